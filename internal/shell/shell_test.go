package shell

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jeanpaul/studentdb/internal/store"
	"github.com/jeanpaul/studentdb/internal/student"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runShell(t *testing.T, mgr Manager, input ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(mgr, strings.NewReader(strings.Join(input, "\n")+"\n"), &out, nil)
	require.NoError(t, sh.Run())
	return out.String()
}

func newStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "students.json"))
}

func TestShell_AddThenList(t *testing.T) {
	st := newStore(t)

	out := runShell(t, st,
		"1", "1", "Alice", "A",
		"4",
		"5",
	)

	assert.Contains(t, out, "--- Student Management System ---")
	assert.Contains(t, out, "[Success] Student 'Alice' added.")
	assert.Contains(t, out, "1          | Alice                | A")
	assert.Contains(t, out, "Exiting system. Goodbye!")
}

func TestShell_DuplicateAdd(t *testing.T) {
	st := newStore(t)

	out := runShell(t, st,
		"1", "1", "Alice", "A",
		"1", "1", "Bob", "B",
		"5",
	)

	assert.Contains(t, out, "[Error] Student ID 1 already exists!")
	assert.Equal(t, []student.Record{{ID: "1", Name: "Alice", Grade: "A"}}, st.Records())
}

func TestShell_UpdateBlankSkips(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("1", "Alice", "A"))

	out := runShell(t, st,
		"2", "1", "", "B",
		"5",
	)

	assert.Contains(t, out, "Enter new Name (leave blank to skip): ")
	assert.Contains(t, out, "[Success] Student 1 updated.")
	assert.Equal(t, []student.Record{{ID: "1", Name: "Alice", Grade: "B"}}, st.Records())
}

func TestShell_UpdateMissing(t *testing.T) {
	st := newStore(t)

	out := runShell(t, st, "2", "7", "Zed", "Z", "5")

	assert.Contains(t, out, "[Error] Student ID 7 not found.")
	assert.Zero(t, st.Len())
}

func TestShell_Delete(t *testing.T) {
	st := newStore(t)
	require.NoError(t, st.Add("1", "Alice", "A"))

	out := runShell(t, st,
		"3", "1",
		"3", "1",
		"4",
		"5",
	)

	assert.Contains(t, out, "[Success] Student 1 removed.")
	assert.Contains(t, out, "[Error] Student ID 1 not found.")
	assert.Contains(t, out, store.EmptyMessage)
}

func TestShell_InvalidChoice(t *testing.T) {
	st := newStore(t)

	out := runShell(t, st, "9", "", "add", "5")

	assert.Equal(t, 3, strings.Count(out, "Invalid input. Please choose 1-5."))
	assert.Equal(t, 4, strings.Count(out, "Select an option (1-5): "))
}

func TestShell_EOFExits(t *testing.T) {
	st := newStore(t)
	var out bytes.Buffer

	sh := New(st, strings.NewReader("1\n42\nHalf"), &out, nil)
	require.NoError(t, sh.Run())

	assert.Contains(t, out.String(), "Exiting system. Goodbye!")
	assert.Zero(t, st.Len())
}

func TestShell_CRLFInput(t *testing.T) {
	st := newStore(t)
	var out bytes.Buffer

	sh := New(st, strings.NewReader("1\r\n1\r\nAlice\r\nA\r\n5\r\n"), &out, nil)
	require.NoError(t, sh.Run())

	assert.Equal(t, []student.Record{{ID: "1", Name: "Alice", Grade: "A"}}, st.Records())
}

func TestShell_FieldsAreNotTrimmed(t *testing.T) {
	st := newStore(t)

	runShell(t, st, "1", " 1 ", "  Alice", "A ", "5")

	assert.Equal(t, []student.Record{{ID: " 1 ", Name: "  Alice", Grade: "A "}}, st.Records())
}

type failingManager struct{ calls int }

var errDisk = errors.New("disk full")

func (f *failingManager) Add(string, string, string) error   { f.calls++; return errDisk }
func (f *failingManager) Update(string, student.Patch) error { f.calls++; return errDisk }
func (f *failingManager) Delete(string) (int, error)         { f.calls++; return 1, errDisk }
func (f *failingManager) List() string                       { return store.EmptyMessage }

func TestShell_SaveErrorIsReportedAndLoopContinues(t *testing.T) {
	mgr := &failingManager{}

	out := runShell(t, mgr,
		"1", "1", "Alice", "A",
		"3", "1",
		"5",
	)

	assert.Equal(t, 2, mgr.calls)
	assert.Equal(t, 2, strings.Count(out, "[Error] Could not save records: disk full"))
	assert.Contains(t, out, "Exiting system. Goodbye!")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "[Error] Student ID 3 already exists!", Describe("3", student.ErrDuplicateID))
	assert.Equal(t, "[Error] Student ID 3 not found.", Describe("3", student.ErrNotFound))
	assert.Equal(t, "[Error] Input for student ID 3 is not valid UTF-8 text.", Describe("3", student.ErrInvalidText))
}

func TestShell_InvalidUTF8AddIsRefused(t *testing.T) {
	st := newStore(t)

	out := runShell(t, st,
		"1", "caf\xe9", "Latin1", "A",
		"5",
	)

	assert.Contains(t, out, "[Error] Input for student ID caf\xe9 is not valid UTF-8 text.")
	assert.Equal(t, 0, st.Len())
}
