package presenter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menagerie/internal/census/models"
)

func TestJSON(t *testing.T) {
	t.Run("uses two-space indentation", func(t *testing.T) {
		out, err := JSON([]models.CountryRecord{{
			Name: "Dillauti",
			People: []models.PersonRecord{{
				Name:    "Winifred Graham",
				Animals: []models.AnimalRecord{{Name: "Duck"}},
			}},
		}})
		require.NoError(t, err)

		want := `[
  {
    "name": "Dillauti",
    "people": [
      {
        "name": "Winifred Graham",
        "animals": [
          {
            "name": "Duck"
          }
        ]
      }
    ]
  }
]`
		assert.Equal(t, want, out)
	})

	t.Run("nil renders as empty array", func(t *testing.T) {
		out, err := JSON(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", out)
	})

	t.Run("empty children render as empty arrays", func(t *testing.T) {
		out, err := JSON([]models.CountryRecord{{Name: "Uzuzozne", People: []models.PersonRecord{}}})
		require.NoError(t, err)
		assert.JSONEq(t, `[{"name":"Uzuzozne","people":[]}]`, out)
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteJSON(t *testing.T) {
	t.Run("appends a trailing newline", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, []models.CountryRecord{}))
		assert.Equal(t, "[]\n", buf.String())
	})

	t.Run("propagates writer errors", func(t *testing.T) {
		err := WriteJSON(failingWriter{}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
