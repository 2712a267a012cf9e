// Maintenance helper: dump the persisted dashboard snapshot from Redis
// as indented JSON so corrupted or stale state can be inspected by hand.
//
// Usage: go run scripts/inspect-snapshot.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

const snapshotKey = "tracker:snapshot"

func main() {
	addr := os.Getenv("TRACKER_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()

	raw, err := client.Get(ctx, snapshotKey).Result()
	if err == redis.Nil {
		fmt.Println("no snapshot stored")
		return
	}
	if err != nil {
		log.Fatal("failed to read snapshot:", err)
	}

	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		log.Fatal("snapshot is not valid JSON:", err)
	}

	pretty, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		log.Fatal("failed to re-encode snapshot:", err)
	}
	fmt.Println(string(pretty))
}
