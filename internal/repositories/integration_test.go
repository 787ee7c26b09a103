package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()

	// InitSchema is idempotent
	assert.NoError(t, InitSchema(ctx, db))
	assert.NoError(t, InitSchema(ctx, db))

	userWrite := NewUserWriteRepository(db)
	userRead := NewUserReadRepository(db)
	postWrite := NewPostWriteRepository(db)
	postRead := NewPostReadRepository(db)

	t.Run("user save and lookup", func(t *testing.T) {
		assert.NoError(t, userWrite.Save(ctx, "alice", "hash-a"))
		assert.NoError(t, userWrite.Save(ctx, "bob", "hash-b"))

		user, err := userRead.GetByUsername(ctx, "alice")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "hash-a", user.PasswordHash)

		missing, err := userRead.GetByUsername(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate username fails and leaves one row", func(t *testing.T) {
		err := userWrite.Save(ctx, "alice", "hash-other")
		assert.Error(t, err)

		var count int
		assert.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM users WHERE username=$1", "alice"))
		assert.Equal(t, 1, count)
	})

	t.Run("posts list joins authors newest first", func(t *testing.T) {
		alice, err := userRead.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		bob, err := userRead.GetByUsername(ctx, "bob")
		require.NoError(t, err)

		imageURL := "/uploads/1700000000000-cat.png"
		require.NoError(t, postWrite.Save(ctx, "oldest", "c1", nil, alice.ID))
		require.NoError(t, postWrite.Save(ctx, "middle", "c2", &imageURL, bob.ID))
		require.NoError(t, postWrite.Save(ctx, "newest", "c3", nil, alice.ID))

		// spread created_at so the ordering is unambiguous
		_, err = db.Exec("UPDATE posts SET created_at = NOW() - INTERVAL '2 hours' WHERE title = 'oldest'")
		require.NoError(t, err)
		_, err = db.Exec("UPDATE posts SET created_at = NOW() - INTERVAL '1 hour' WHERE title = 'middle'")
		require.NoError(t, err)

		posts, err := postRead.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, posts, 3)

		assert.Equal(t, "newest", posts[0].Title)
		assert.Equal(t, "alice", posts[0].Username)
		assert.Nil(t, posts[0].ImageURL)

		assert.Equal(t, "middle", posts[1].Title)
		assert.Equal(t, "bob", posts[1].Username)
		assert.NotNil(t, posts[1].ImageURL)
		assert.Equal(t, imageURL, *posts[1].ImageURL)

		assert.Equal(t, "oldest", posts[2].Title)
		assert.Equal(t, "alice", posts[2].Username)

		assert.True(t, posts[0].CreatedAt.After(posts[1].CreatedAt))
		assert.True(t, posts[1].CreatedAt.After(posts[2].CreatedAt))
	})

	t.Run("post insert for missing author fails", func(t *testing.T) {
		err := postWrite.Save(ctx, "orphan", "c", nil, 9999)
		assert.Error(t, err)
	})
}
