//go:build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"azadi_backend/internals/configs"
	aboutModel "azadi_backend/internals/features/pages/about_page/model"
	memberModel "azadi_backend/internals/features/users/members/model"
	"azadi_backend/internals/storage"
)

type backendCase struct {
	name  string
	image string
	port  string
	env   map[string]string
	wait  *wait.LogStrategy
	cfg   func(host, port string) configs.DatabaseConfig
}

var backends = []backendCase{
	{
		name:  "postgres",
		image: "postgres:16-alpine",
		port:  "5432/tcp",
		env:   map[string]string{"POSTGRES_USER": "azadi", "POSTGRES_PASSWORD": "azadi", "POSTGRES_DB": "azadi"},
		wait:  wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
		cfg: func(host, port string) configs.DatabaseConfig {
			return configs.DatabaseConfig{Driver: "postgres", Host: host, Port: port, User: "azadi", Password: "azadi", Name: "azadi", SSLMode: "disable"}
		},
	},
	{
		name:  "mysql",
		image: "mysql:8.0",
		port:  "3306/tcp",
		env:   map[string]string{"MYSQL_ROOT_PASSWORD": "azadi", "MYSQL_USER": "azadi", "MYSQL_PASSWORD": "azadi", "MYSQL_DATABASE": "azadi"},
		wait:  wait.ForLog("port: 3306  MySQL Community Server"),
		cfg: func(host, port string) configs.DatabaseConfig {
			return configs.DatabaseConfig{Driver: "mysql", Host: host, Port: port, User: "azadi", Password: "azadi", Name: "azadi"}
		},
	},
}

func startBackend(t *testing.T, bc backendCase) configs.DatabaseConfig {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        bc.image,
			ExposedPorts: []string{bc.port},
			Env:          bc.env,
			WaitingFor:   bc.wait.WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start %s: %v", bc.name, err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	mapped, err := c.MappedPort(ctx, bc.port)
	if err != nil {
		t.Fatal(err)
	}

	cfg := bc.cfg(host, mapped.Port())
	cfg.MaxOpenConns = 5
	cfg.MaxIdleConns = 2
	return cfg
}

func TestBackends(t *testing.T) {
	for _, bc := range backends {
		bc := bc
		t.Run(bc.name, func(t *testing.T) {
			db, err := ConnectDB(startBackend(t, bc))
			if err != nil {
				t.Fatal(err)
			}
			defer Close(db)
			ctx := context.Background()

			if err := Migrate(db); err != nil {
				t.Fatal(err)
			}

			// singleton upsert is one row on every backend
			pages := storage.NewSingleton[aboutModel.AboutPage](db)
			for i := 0; i < 2; i++ {
				row := aboutModel.AboutPage{HistoryP1: "ক", HistoryP1En: "a", HistoryP2: "খ", HistoryP2En: "b", HistoryP3: "গ", HistoryP3En: "c",
					StudentsCount: "১০০০+", EventsCount: "৫০+", YearsCount: "৩৬+", OfficeHours: "২৪/৭", OfficeHoursEn: "24/7"}
				row.ID = storage.SingletonID
				if _, err := pages.Upsert(ctx, &row, []string{"history_p1"}); err != nil {
					t.Fatalf("upsert %d: %v", i, err)
				}
			}
			var n int64
			db.Model(&aboutModel.AboutPage{}).Count(&n)
			if n != 1 {
				t.Errorf("about_page rows = %d", n)
			}
			got, err := pages.Get(ctx)
			if err != nil || got == nil || got.HistoryP1 != "ক" {
				t.Errorf("bengali round trip: %+v %v", got, err)
			}

			// unique violations map to the same sentinel on every backend
			members := storage.NewRepository[memberModel.Member](db)
			m1 := memberModel.Member{Username: "rahim", Email: "rahim@example.com", Password: "x", FullName: "Rahim"}
			m2 := memberModel.Member{Username: "rahim", Email: "other@example.com", Password: "x", FullName: "Rahim"}
			if err := members.Create(ctx, &m1); err != nil {
				t.Fatal(err)
			}
			if err := members.Create(ctx, &m2); !storage.IsDuplicateKey(err) {
				t.Errorf("duplicate username: %v", err)
			}
		})
	}
}
