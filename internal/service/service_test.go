package service

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"erpapi/internal/repository"
)

func TestRequireFields(t *testing.T) {
	assert.NoError(t, requireFields(field{"a", "x"}, field{"b", "y"}))

	err := requireFields(field{"a", ""}, field{"b", "y"}, field{"c", "  "})
	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"a", "c"}, ve.Fields)
	assert.Equal(t, "invalid or missing fields: a, c", err.Error())
}

func TestMapRepoErr(t *testing.T) {
	assert.Nil(t, mapRepoErr(nil))
	assert.Equal(t, ErrNotFound, mapRepoErr(repository.ErrNotFound))
	assert.Equal(t, ErrConflict, mapRepoErr(repository.ErrDuplicate))
	other := errors.New("boom")
	assert.Equal(t, other, mapRepoErr(other))
}

func TestPageQuery(t *testing.T) {
	assert.Equal(t, repository.PageQuery{Limit: 10, Offset: 0}, pageQuery(0, -5))
	assert.Equal(t, repository.PageQuery{Limit: 25, Offset: 50}, pageQuery(25, 50))
	assert.Equal(t, repository.PageQuery{Limit: 100, Offset: 0}, pageQuery(1000, 0))
}

func TestNewNumber(t *testing.T) {
	n := newNumber("ACT", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^ACT-20260102-[0-9A-F]{6}$`), n)
}

func TestToListResult_NilItems(t *testing.T) {
	res := toListResult(&repository.PageResult[string]{Total: 0}, repository.PageQuery{Limit: 10})
	assert.NotNil(t, res.Items)
	assert.Equal(t, 10, res.Limit)
}
