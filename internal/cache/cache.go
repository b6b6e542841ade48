package cache

import (
	"context"
	"crypto/tls"
	"sync"
	"time"

	"jobtracker/internal/config"

	"github.com/valkey-io/valkey-go"
)

const pingTimeout = 3 * time.Second

var (
	once         sync.Once
	valkeyClient valkey.Client
)

// GetCache lazily connects to Valkey; nothing touches the cache at package init.
func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}

func Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	client := GetCache()
	return client.Do(ctx, client.B().Ping().Build()).Error()
}
