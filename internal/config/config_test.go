package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		expectError bool
		errorMsg    string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name:        "Success with defaults",
			envVars:     map[string]string{},
			expectError: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
				assert.Empty(t, cfg.Auth.APIKey)
				assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
				assert.False(t, cfg.CORS.AllowCredentials)
				assert.Equal(t, ".", cfg.Image.Root)
				assert.Equal(t, 180, cfg.Image.Width)
				assert.Equal(t, 180, cfg.Image.Height)
				assert.Equal(t, 1024, cfg.Image.MaxDimension)
			},
		},
		{
			name: "Success with all config set",
			envVars: map[string]string{
				"SERVER_HOST":            "localhost",
				"SERVER_PORT":            "9090",
				"LOG_LEVEL":              "debug",
				"LOG_FORMAT":             "console",
				"API_KEY":                "test-key-123",
				"CORS_ALLOWED_ORIGINS":   "http://localhost:3000, https://cook.example.com",
				"CORS_ALLOW_CREDENTIALS": "true",
				"IMAGE_ROOT":             "/srv/cookbook",
				"IMAGE_WIDTH":            "320",
				"IMAGE_HEIGHT":           "240",
				"IMAGE_MAX_DIMENSION":    "640",
			},
			expectError: false,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "localhost:9090", cfg.Server.Address())
				assert.Equal(t, "test-key-123", cfg.Auth.APIKey)
				assert.Equal(t, []string{"http://localhost:3000", "https://cook.example.com"}, cfg.CORS.AllowedOrigins)
				assert.True(t, cfg.CORS.AllowCredentials)
				assert.Equal(t, "/srv/cookbook", cfg.Image.Root)
				assert.Equal(t, 320, cfg.Image.Width)
				assert.Equal(t, 240, cfg.Image.Height)
				assert.Equal(t, 640, cfg.Image.MaxDimension)
			},
		},
		{
			name: "Error - invalid server port",
			envVars: map[string]string{
				"SERVER_PORT": "99999",
			},
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name: "Error - invalid log level",
			envVars: map[string]string{
				"LOG_LEVEL": "invalid",
			},
			expectError: true,
			errorMsg:    "invalid log level",
		},
		{
			name: "Error - invalid log format",
			envVars: map[string]string{
				"LOG_FORMAT": "xml",
			},
			expectError: true,
			errorMsg:    "invalid log format",
		},
		{
			name: "Error - zero image width",
			envVars: map[string]string{
				"IMAGE_WIDTH": "0",
			},
			expectError: true,
			errorMsg:    "invalid image size",
		},
		{
			name: "Error - max dimension below default size",
			envVars: map[string]string{
				"IMAGE_MAX_DIMENSION": "100",
			},
			expectError: true,
			errorMsg:    "invalid image max dimension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for key, value := range tt.envVars {
				os.Setenv(key, value)
			}

			cfg, err := Load()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				tt.check(t, cfg)
			}

			// Clean up
			os.Clearenv()
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Host: "localhost", Port: 8080},
			Logger: LoggerConfig{Level: "info", Format: "json"},
			CORS:   CORSConfig{AllowedOrigins: []string{"*"}},
			Image:  ImageConfig{Root: ".", Width: 180, Height: 180, MaxDimension: 1024},
		}
	}

	tests := []struct {
		name        string
		mutate      func(c *Config)
		expectError bool
		errorMsg    string
	}{
		{
			name:   "Valid configuration",
			mutate: func(c *Config) {},
		},
		{
			name:   "Valid without API key",
			mutate: func(c *Config) { c.Auth.APIKey = "" },
		},
		{
			name:        "Invalid - server port too high",
			mutate:      func(c *Config) { c.Server.Port = 99999 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - server port zero",
			mutate:      func(c *Config) { c.Server.Port = 0 },
			expectError: true,
			errorMsg:    "invalid server port",
		},
		{
			name:        "Invalid - no CORS origins",
			mutate:      func(c *Config) { c.CORS.AllowedOrigins = nil },
			expectError: true,
			errorMsg:    "CORS origin",
		},
		{
			name:        "Invalid - negative image height",
			mutate:      func(c *Config) { c.Image.Height = -1 },
			expectError: true,
			errorMsg:    "invalid image size",
		},
		{
			name:        "Invalid - max dimension smaller than width",
			mutate:      func(c *Config) { c.Image.Width = 2048 },
			expectError: true,
			errorMsg:    "invalid image max dimension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{
			name: "Standard configuration",
			config: ServerConfig{
				Host: "localhost",
				Port: 8080,
			},
			expected: "localhost:8080",
		},
		{
			name: "All interfaces",
			config: ServerConfig{
				Host: "0.0.0.0",
				Port: 9090,
			},
			expected: "0.0.0.0:9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.Address())
		})
	}
}

func TestGetEnv(t *testing.T) {
	os.Clearenv()

	// Test with environment variable set
	os.Setenv("TEST_VAR", "test_value")
	assert.Equal(t, "test_value", getEnv("TEST_VAR", "default"))

	// Test with environment variable not set
	assert.Equal(t, "default", getEnv("NON_EXISTENT_VAR", "default"))

	os.Clearenv()
}

func TestGetEnvAsInt(t *testing.T) {
	os.Clearenv()

	// Test with valid integer
	os.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 10))

	// Test with invalid integer (should return default)
	os.Setenv("TEST_INVALID", "not_a_number")
	assert.Equal(t, 10, getEnvAsInt("TEST_INVALID", 10))

	// Test with non-existent variable
	assert.Equal(t, 10, getEnvAsInt("NON_EXISTENT_INT", 10))

	os.Clearenv()
}

func TestGetEnvAsBool(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	os.Setenv("TEST_INVALID", "maybe")
	assert.False(t, getEnvAsBool("TEST_INVALID", false))

	assert.True(t, getEnvAsBool("NON_EXISTENT_BOOL", true))

	os.Clearenv()
}

func TestGetEnvAsSlice(t *testing.T) {
	os.Clearenv()

	os.Setenv("TEST_LIST", " a, ,b ,c")
	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("TEST_LIST", nil))

	os.Setenv("TEST_BLANK_LIST", " , ")
	assert.Equal(t, []string{"*"}, getEnvAsSlice("TEST_BLANK_LIST", []string{"*"}))

	assert.Equal(t, []string{"x"}, getEnvAsSlice("NON_EXISTENT_LIST", []string{"x"}))

	os.Clearenv()
}
