package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverFor(t *testing.T) {
	cases := map[string]Driver{
		"mongodb://localhost:27017/todolist":          DriverMongo,
		"mongodb+srv://cluster.example.net/todolist":  DriverMongo,
		"postgres://u:p@localhost:5432/todolist":      DriverPostgres,
		"postgresql://u:p@localhost:5432/todolist":    DriverPostgres,
		"mysql://u:p@tcp(localhost:3306)/todolist":    DriverMySQL,
		"sqlite://todolist.db":                        DriverSQLite,
	}
	for url, want := range cases {
		got, err := DriverFor(url)
		require.NoError(t, err, url)
		assert.Equal(t, want, got, url)
	}

	_, err := DriverFor("redis://localhost:6379")
	assert.Error(t, err)
}

func TestMongoDatabaseName(t *testing.T) {
	name, err := mongoDatabaseName("mongodb://localhost:27017/tasks_prod?retryWrites=true")
	require.NoError(t, err)
	assert.Equal(t, "tasks_prod", name)

	name, err = mongoDatabaseName("mongodb://localhost:27017")
	require.NoError(t, err)
	assert.Equal(t, "todolist", name)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!% done", EscapeLike("100% done"))
	assert.Equal(t, "snake!_case", EscapeLike("snake_case"))
	assert.Equal(t, "wow!!", EscapeLike("wow!"))
	assert.Equal(t, "plain", EscapeLike("plain"))
}
