package cache

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greendrake/estate-seeder/internal/utils"
)

type testReport struct {
	RunID    string `json:"runId"`
	Accounts int    `json:"accounts"`
}

func TestReportPublisher_PublishAndTrim(t *testing.T) {
	addr := utils.RequireEnv(t, "REDIS_ADDR_TEST")
	client, err := ConnectRedis(Options{Addr: addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = DisconnectRedis(client) })

	ctx := context.Background()
	p := NewReportPublisher[testReport](client, "seed:test_report", 2)
	require.NoError(t, client.Del(ctx, p.Key, p.HistoryKey()).Err())
	t.Cleanup(func() { client.Del(context.Background(), p.Key, p.HistoryKey()) })

	for i := 1; i <= 3; i++ {
		require.NoError(t, p.Publish(ctx, &testReport{RunID: "run-" + strconv.Itoa(i), Accounts: i}))
	}

	latest, err := p.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "run-3", latest.RunID)
	assert.Equal(t, 3, latest.Accounts)

	history, err := client.LRange(ctx, p.HistoryKey(), 0, -1).Result()
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Contains(t, history[0], `"runId":"run-3"`)
	assert.Contains(t, history[1], `"runId":"run-2"`)
}

func TestConnectRedis_Unreachable(t *testing.T) {
	_, err := ConnectRedis(Options{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
