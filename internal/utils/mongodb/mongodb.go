package mongodb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config parameters for the MongoDB connection
type Config struct {
	URI    string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	DBName string `env:"MONGO_DBNAME" envDefault:"club"`
}

// Conn is a lazily-initialized shared handle around one mongo.Client. The
// client is established on first use and reused for the lifetime of the
// process, which keeps warm serverless invocations from reconnecting.
type Conn struct {
	cfg    Config
	once   sync.Once
	client *mongo.Client
	err    error
}

func New(cfg Config) *Conn {
	return &Conn{cfg: cfg}
}

// Client connects on first call (guarded by sync.Once) and returns the cached
// client afterwards. A failed first attempt is sticky for the process.
func (c *Conn) Client(ctx context.Context) (*mongo.Client, error) {
	c.once.Do(func() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(c.cfg.URI))
		if err != nil {
			c.err = fmt.Errorf("failed to connect to MongoDB: %v", err)
			return
		}

		if err := client.Ping(connectCtx, nil); err != nil {
			c.err = fmt.Errorf("failed to ping MongoDB: %v", err)
			return
		}

		c.client = client
	})

	return c.client, c.err
}

func (c *Conn) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := c.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.cfg.DBName), nil
}

// Disconnect tears the shared client down. Safe to call when the connection
// was never established.
func (c *Conn) Disconnect(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
