// Package test provides testing utilities for the service, including the
// MongoDB test container the storage tests run against.
package test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MongoPort is the port exposed by the MongoDB test container.
const MongoPort = "27017"

// StartMongoContainer starts a MongoDB container for testing. It returns the
// container and any error encountered during startup.
func StartMongoContainer(ctx context.Context) (testcontainers.Container, error) {
	return testcontainers.GenericContainer(ctx,
		testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "mongo:7",
				ExposedPorts: []string{fmt.Sprintf("%s/tcp", MongoPort)},
				WaitingFor:   wait.ForListeningPort(MongoPort),
			},
			Started: true,
		})
}

// RandomDatabaseName returns a random database name, so concurrent test
// packages sharing a container never collide.
func RandomDatabaseName() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return fmt.Sprintf("test_%s", hex.EncodeToString(b))
}
