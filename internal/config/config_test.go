package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"GRPC_PORT", "API_TOKEN", "DATA_BACKEND", "DB_CONN_STR", "DB_HOST", "DB_NAME",
		"EVENT_BROKER", "KAFKA_BROKERS", "LOG_FORMAT", "SHUTDOWN_TIMEOUT", "MIGRATE_ON_START"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.GRPCPort)
	assert.Equal(t, "dev-token", cfg.APIToken)
	assert.Equal(t, BackendMemory, cfg.DataBackend)
	assert.Equal(t, BrokerNone, cfg.EventBroker)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.MigrateOnStart)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Contains(t, cfg.DBConnStr, "dbname=walletledger")
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("GRPC_PORT", "9090")
	t.Setenv("DATA_BACKEND", "postgres")
	t.Setenv("DB_CONN_STR", "postgres://u:p@db/ledger?sslmode=disable")
	t.Setenv("EVENT_BROKER", "kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("MIGRATE_ON_START", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()
	assert.Equal(t, ":9090", cfg.ListenAddr())
	assert.Equal(t, "postgres://u:p@db/ledger?sslmode=disable", cfg.DBConnStr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.False(t, cfg.MigrateOnStart)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestValidate_CollectsEveryProblem(t *testing.T) {
	cfg := &Config{
		GRPCPort:        "http",
		APIToken:        "",
		DataBackend:     "sqlite",
		EventBroker:     "amqp",
		AMQPURL:         "http://broker",
		AMQPExchange:    "",
		LogFormat:       "xml",
		ShutdownTimeout: 0,
	}

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "invalid port 'http'")
	assert.Contains(t, msg, "API token cannot be empty")
	assert.Contains(t, msg, "invalid data backend 'sqlite'")
	assert.Contains(t, msg, "invalid AMQP URL scheme 'http'")
	assert.Contains(t, msg, "AMQP exchange name cannot be empty")
	assert.Contains(t, msg, "invalid log format 'xml'")
	assert.Contains(t, msg, "invalid shutdown timeout")
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Load()
	cfg.GRPCPort = "70000"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be between 1 and 65535")
}
