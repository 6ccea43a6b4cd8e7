package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/text-students-api/internal/config"
	"github.com/aanand-mishra/text-students-api/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := New(&config.Config{StoragePath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestSQLite_EmptyList(t *testing.T) {
	db := newTestDB(t)

	students, err := db.GetStudents()
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestSQLite_AddKeepsOrder(t *testing.T) {
	db := newTestDB(t)
	first := types.Student{Name: "Ada", Dob: "1815-12-10", Country: "UK", City: "London", Skills: []string{"math", "engines"}, Bio: "first programmer"}
	second := types.Student{Name: "Alan", Skills: []string{}}

	students, err := db.AddStudent(first)
	require.NoError(t, err)
	assert.Equal(t, []types.Student{first}, students)

	students, err = db.AddStudent(second)
	require.NoError(t, err)
	assert.Equal(t, []types.Student{first, second}, students)

	listed, err := db.GetStudents()
	require.NoError(t, err)
	assert.Equal(t, students, listed)
}

func TestSQLite_NilSkillsComeBackEmpty(t *testing.T) {
	db := newTestDB(t)

	students, err := db.AddStudent(types.Student{Name: "NoSkills"})
	require.NoError(t, err)

	require.Len(t, students, 1)
	assert.NotNil(t, students[0].Skills)
	assert.Empty(t, students[0].Skills)
}

func TestSQLite_SeparateInstancesDoNotShare(t *testing.T) {
	a := newTestDB(t)
	b := newTestDB(t)

	_, err := a.AddStudent(types.Student{Name: "only in a"})
	require.NoError(t, err)

	students, err := b.GetStudents()
	require.NoError(t, err)
	assert.Empty(t, students)
}
