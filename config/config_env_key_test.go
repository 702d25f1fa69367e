package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"bucketUrl": "file://./data/store",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"catalog": map[string]any{
			"menuPath": "",
		},
		"directions": map[string]any{
			"walkSpeedKmh": 4.8,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_BUCKETURL", want: "store.bucketUrl"},
		{envKey: "STORE_REDIS_ADDR", want: "store.redis.addr"},
		{envKey: "CATALOG_MENUPATH", want: "catalog.menuPath"},
		{envKey: "DIRECTIONS_WALKSPEEDKMH", want: "directions.walkSpeedKmh"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
