package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
  read_timeout: 15
database:
  host: localhost
  port: 5432
  user: testuser
  password: testpass
  dbname: testdb
  sslmode: require
ledger:
  rpc_url: "http://localhost:8545"
  websocket_url: "ws://localhost:8545"
  chain_id: "eip155:11155111"
  contract_address: "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
  signer_key: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
temporal:
  host_port: "temporal:7233"
  namespace: "verifier"
  transfer_task_queue: "transfers"
auth:
  jwt_public_key: "test-key"
  api_keys:
    - "key-one"
    - "key-two"
worker:
  pool_size: 8
  queue_size: 2048
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 15, cfg.Server.ReadTimeout)
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, "eip155:11155111", string(cfg.Ledger.ChainID))
				assert.Equal(t, "0x396343362be2A4dA1cE0C1C210945346fb82Aa49", cfg.Ledger.ContractAddress)
				assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
				assert.Equal(t, "verifier", cfg.Temporal.Namespace)
				assert.Equal(t, "transfers", cfg.Temporal.TransferTaskQueue)
				assert.Equal(t, []string{"key-one", "key-two"}, cfg.Auth.APIKeys)
				assert.Equal(t, 8, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 2048, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
ledger:
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *APIConfig) {
				// Check defaults
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "eip155:1", string(cfg.Ledger.ChainID))
				assert.Equal(t, uint64(3), cfg.Ledger.ReadRetryMax)
				assert.Equal(t, 2*time.Second, cfg.Ledger.ReceiptPollInterval)
				assert.Equal(t, 2*time.Minute, cfg.Ledger.ReceiptTimeout)
				assert.Equal(t, "product-transfers", cfg.Temporal.TransferTaskQueue)
				assert.Equal(t, 4, cfg.Worker.WorkerPoolSize)
				assert.Equal(t, 1024, cfg.Worker.WorkerQueueSize)
			},
		},
		{
			name:        "missing config file",
			configFile:  "",
			expectError: false,
			validate:    nil,
		},
		{
			name: "invalid yaml",
			configFile: `
				server:
				  port: invalid
			`,
			expectError: true,
			validate:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			var configFile string

			if tt.configFile != "" {
				configFile = filepath.Join(tmpDir, "config.yaml")
				err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
				require.NoError(t, err)
			} else {
				configFile = filepath.Join(tmpDir, "nonexistent.yaml")
			}

			cfg, err := LoadAPIConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				if tt.validate != nil {
					require.NoError(t, err)
					require.NotNil(t, cfg)
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadEmitterConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *EmitterConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
  stream_name: "TEST_STREAM"
  max_reconnects: 5
  reconnect_wait: "5s"
  connection_name: "test-emitter"
ledger:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
  chain_id: "eip155:11155111"
  contract_address: "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
  start_block: 1000
  cursor_save_freq: 25
  cursor_save_delay: "10s"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
				assert.Equal(t, "TEST_STREAM", cfg.NATS.StreamName)
				assert.Equal(t, 5, cfg.NATS.MaxReconnects)
				assert.Equal(t, 5*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "ws://localhost:8545", cfg.Ledger.WebSocketURL)
				assert.Equal(t, uint64(1000), cfg.Ledger.StartBlock)
				assert.Equal(t, uint64(25), cfg.Ledger.CursorSaveFreq)
				assert.Equal(t, 10*time.Second, cfg.Ledger.CursorSaveDelay)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  user: testuser
  password: testpass
  dbname: testdb
nats:
  url: "nats://localhost:4222"
ledger:
  websocket_url: "ws://localhost:8545"
  rpc_url: "http://localhost:8545"
`,
			expectError: false,
			validate: func(t *testing.T, cfg *EmitterConfig) {
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.NATS.MaxReconnects)
				assert.Equal(t, 2*time.Second, cfg.NATS.ReconnectWait)
				assert.Equal(t, "REGISTRY_EVENTS", cfg.NATS.StreamName)
				assert.Equal(t, "eip155:1", string(cfg.Ledger.ChainID))
				assert.Equal(t, uint64(10), cfg.Ledger.CursorSaveFreq)
				assert.Equal(t, 30*time.Second, cfg.Ledger.CursorSaveDelay)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configFile := filepath.Join(tmpDir, "config.yaml")
			err := os.WriteFile(configFile, []byte(tt.configFile), 0600)
			require.NoError(t, err)

			cfg, err := LoadEmitterConfig(configFile, "")

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)
				if tt.validate != nil {
					tt.validate(t, cfg)
				}
			}
		})
	}
}

func TestLoadTransferWorkerConfig(t *testing.T) {
	configFile := `
ledger:
  rpc_url: "http://localhost:8545"
  contract_address: "0x396343362be2A4dA1cE0C1C210945346fb82Aa49"
  signer_key: "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
temporal:
  host_port: "temporal:7233"
`
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configFile), 0600))

	cfg, err := LoadTransferWorkerConfig(path, "")
	require.NoError(t, err)

	assert.Equal(t, "temporal:7233", cfg.Temporal.HostPort)
	// Defaults
	assert.Equal(t, "default", cfg.Temporal.Namespace)
	assert.Equal(t, "product-transfers", cfg.Temporal.TransferTaskQueue)
	assert.Equal(t, 50, cfg.Temporal.MaxConcurrentActivityExecutionSize)
	assert.Equal(t, float64(50), cfg.Temporal.WorkerActivitiesPerSecond)
	assert.Equal(t, 10, cfg.Temporal.MaxConcurrentActivityTaskPollers)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "verifier",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=user password=pass dbname=verifier sslmode=disable",
		cfg.DSN())
}

func TestDatabaseConfig_ReadDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "primary",
		Port:     5432,
		ReadHost: "replica",
		User:     "user",
		Password: "pass",
		DBName:   "verifier",
		SSLMode:  "disable",
	}

	// Falls back to the primary port when read_port is not set
	assert.Equal(t,
		"host=replica port=5432 user=user password=pass dbname=verifier sslmode=disable",
		cfg.ReadDSN())

	cfg.ReadPort = 5433
	assert.Equal(t,
		"host=replica port=5433 user=user password=pass dbname=verifier sslmode=disable",
		cfg.ReadDSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	// Create temporary directory for env files
	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	envFile := filepath.Join(envDir, ".env")
	envContent := `TAGIN_DEBUG=true
TAGIN_DATABASE_HOST=env-host
TAGIN_DATABASE_PORT=3306
TAGIN_LEDGER_RPC_URL=http://env-rpc:8545
`
	require.NoError(t, os.WriteFile(envFile, []byte(envContent), 0600))

	// Create config file with different values to verify env vars override
	configPath := filepath.Join(tmpDir, "config.yaml")
	configFile := `
debug: false
database:
  host: file-host
  port: 5432
ledger:
  rpc_url: "http://file-rpc:8545"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configFile), 0600))

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// The .env file is loaded via godotenv.Overload and picked up by
	// viper's AutomaticEnv with the TAGIN_ prefix
	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "http://env-rpc:8545", cfg.Ledger.RPCURL)
}
