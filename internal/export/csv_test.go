package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"jobscrape-engine/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.JobRecord {
	return []domain.JobRecord{
		{
			Title:       "Senior Python Developer",
			Company:     "Payne, Roberts and Davis",
			Location:    "Stewartbury, AA",
			DatePosted:  "2021-04-08",
			Description: "Lorem ipsum dolor sit amet...",
		},
		{
			Title:       "Energy engineer",
			Company:     "Vasquez-Davidson",
			Location:    "Christopherville, AA",
			DatePosted:  "2021-04-08",
			Description: "He said \"ship it\",\nthen left.",
		},
	}
}

func TestEncodeHeaderAndOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()))

	want := "Job Title,Company,Location,Date,Description\n" +
		"Senior Python Developer,\"Payne, Roberts and Davis\",\"Stewartbury, AA\",2021-04-08,Lorem ipsum dolor sit amet...\n" +
		"Energy engineer,Vasquez-Davidson,\"Christopherville, AA\",2021-04-08,\"He said \"\"ship it\"\",\nthen left.\"\n"
	require.Equal(t, want, buf.String())
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	require.Equal(t, "Job Title,Company,Location,Date,Description\n", buf.String())
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	recs := sampleRecords()

	require.NoError(t, WriteCSV(path, recs))
	got, err := ReadCSV(path)
	require.NoError(t, err)
	if diff := cmp.Diff(recs, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	_, err = os.Stat(path + ".tmp")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteCSVIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")

	require.NoError(t, WriteCSV(path, sampleRecords()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, WriteCSV(path, sampleRecords()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestWriteCSVOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("stale,data\n1,2\n3,4\n5,6\n"), 0o644))

	require.NoError(t, WriteCSV(path, sampleRecords()[:1]))
	got, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestWriteCSVFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	path := filepath.Join(blocker, "jobs.csv")
	require.Error(t, WriteCSV(path, sampleRecords()))

	_, err := os.Stat(path)
	require.Error(t, err)
}

func TestDecodeRejectsWrongHeader(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("Title,Company,Location,Date,Description\n"))
	require.Error(t, err)

	_, err = Decode(bytes.NewBufferString(""))
	require.Error(t, err)
}

func TestLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.csv")

	unlock, err := Lock(path)
	require.NoError(t, err)

	_, err = Lock(path)
	require.ErrorIs(t, err, ErrLocked)

	require.NoError(t, unlock())
	_, err = os.Stat(path + ".lock")
	require.ErrorIs(t, err, os.ErrNotExist)

	unlock, err = Lock(path)
	require.NoError(t, err)
	require.NoError(t, unlock())
}
