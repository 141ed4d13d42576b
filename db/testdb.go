package db

import (
	"context"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var teardown func(context.Context, ...testcontainers.TerminateOption) error

// ConnectTest starts a disposable PostgreSQL container, points the global DB
// at it and runs migrations. The returned function terminates the container.
func ConnectTest() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	if DB != nil && teardown != nil {
		return teardown, nil
	}

	var (
		dbName = "talentflow_test"
		dbPwd  = "password"
		dbUser = "talentflow"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, err
	}

	err = Connect(dbHost, dbPort.Port(), dbName, dbUser, dbPwd, false, true)
	if err != nil {
		return dbContainer.Terminate, err
	}

	teardown = dbContainer.Terminate
	return teardown, nil
}
