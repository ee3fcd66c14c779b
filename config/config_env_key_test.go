package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"env": map[string]any{
			"serviceName": "vows",
			"log": map[string]any{
				"pretty": true,
				"level":  "info",
			},
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"maxIdleConns": 10,
		},
		"secretKey": map[string]any{
			"access":  "",
			"refresh": "",
		},
		"invite": map[string]any{
			"acceptBaseUrl": "http://localhost:8080/invites/accept",
		},
		"pubsub": map[string]any{
			"projectId": "",
			"localEndpoint": "",
		},
	}

	cases := []struct {
		name   string
		rawKey string
		want   string
	}{
		{
			name:   "matches nested camelCase key",
			rawKey: "ENV_SERVICENAME",
			want:   "env.serviceName",
		},
		{
			name:   "matches deep nested key",
			rawKey: "ENV_LOG_LEVEL",
			want:   "env.log.level",
		},
		{
			name:   "matches camelCase leaf under postgres",
			rawKey: "POSTGRES_SSLMODE",
			want:   "postgres.sslMode",
		},
		{
			name:   "matches camelCase top-level section",
			rawKey: "SECRETKEY_ACCESS",
			want:   "secretKey.access",
		},
		{
			name:   "matches invite accept url",
			rawKey: "INVITE_ACCEPTBASEURL",
			want:   "invite.acceptBaseUrl",
		},
		{
			name:   "matches pubsub project id",
			rawKey: "PUBSUB_PROJECTID",
			want:   "pubsub.projectId",
		},
		{
			name:   "falls back to lowercase for unknown key",
			rawKey: "UNKNOWN_SECTION_VALUE",
			want:   "unknown.section.value",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := canonicalizeEnvKey(tc.rawKey, existing)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sslmode", normalizeToken("sslMode"))
	assert.Equal(t, "maxidleconns", normalizeToken("max_idle_conns"))
	assert.Equal(t, "acceptbaseurl", normalizeToken("acceptBaseUrl"))
}
