package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("BOOL_KEY", "true")
	t.Setenv("INT_KEY", "42")
	t.Setenv("BAD_BOOL_KEY", "maybe")

	assert.True(t, GetEnvAsType("BOOL_KEY", false))
	assert.Equal(t, 42, GetEnvAsType("INT_KEY", 0))
	assert.True(t, GetEnvAsType("BAD_BOOL_KEY", true), "unparsable values fall back to the default")
	assert.Equal(t, "fallback", GetEnvAsType("UNSET_STRING_KEY", "fallback"))
}

func TestLevelForEnvironment(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, LevelForEnvironment("development"))
	assert.Equal(t, logrus.ErrorLevel, LevelForEnvironment("production"))
	assert.Equal(t, logrus.InfoLevel, LevelForEnvironment("staging"))
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "APP_ENV", "LOG_LEVEL", "DB_URI",
		"SEED_DATABASE", "AUTH_ENABLED", "JWT_SECRET",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("DB_URI", "postgres://user:secret@db:5432/pizzas")
		t.Setenv("SEED_DATABASE", "false")
		t.Setenv("AUTH_ENABLED", "true")
		t.Setenv("JWT_SECRET", "super_secret_jwt_key")

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 9000, config.Port)
		assert.Equal(t, "0.0.0.0", config.Host)
		assert.Equal(t, "debug", config.LogLevel)
		assert.Equal(t, "postgres://user:secret@db:5432/pizzas", config.DatabaseURI)
		assert.False(t, config.SeedDatabase)
		assert.True(t, config.AuthEnabled)
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with out of range port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "70000")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should fail with invalid log level", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("LOG_LEVEL", "loud")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("should require a secret when auth is enabled", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("AUTH_ENABLED", "true")

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, 5555, config.Port)
		assert.Equal(t, "localhost", config.Host)
		assert.Equal(t, "info", config.LogLevel)
		assert.Equal(t, DefaultDatabaseURI, config.DatabaseURI)
		assert.True(t, config.SeedDatabase)
		assert.False(t, config.AuthEnabled)
	})

	t.Run("String masks secrets", func(t *testing.T) {
		config := &Config{
			DatabaseURI: "postgres://user:secret@db:5432/pizzas",
			JWTSecret:   "super_secret_jwt_key",
		}

		s := config.String()

		assert.NotContains(t, s, "secret@")
		assert.NotContains(t, s, "super_secret_jwt_key")
		assert.Contains(t, s, "user:REDACTED@db:5432")
	})
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
