package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`duplicate key value violates unique constraint "idx_books_isbn"`)))
	assert.True(t, isUniqueConstraintViolation(errors.New("ERROR: some failure (SQLSTATE 23505)")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsSerializationFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "serialization failure sqlstate",
			err:  errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"),
			want: true,
		},
		{
			name: "deadlock detected sqlstate",
			err:  errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"),
			want: true,
		},
		{
			name: "message without sqlstate",
			err:  errors.New("could not serialize access due to read/write dependencies"),
			want: true,
		},
		{
			name: "plain constraint violation",
			err:  errors.New("ERROR: value too long (SQLSTATE 22001)"),
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isSerializationFailure(tc.err))
		})
	}
}
