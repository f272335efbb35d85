package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/application/port/mocks"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
)

func TestCheckConfigUseCase_Execute(t *testing.T) {
	t.Run("reports each file in input order", func(t *testing.T) {
		// Arrange
		mockStore := mocks.NewMockConfigFileStore(t)
		mockStore.EXPECT().Read(mock.Anything, "/a").Return([]byte("font-size = 12\n"), nil)
		mockStore.EXPECT().Read(mock.Anything, "/b").Return([]byte("font-size = huge\nnot a directive\n"), nil)
		mockStore.EXPECT().Read(mock.Anything, "/c").
			Return(nil, &port.FileError{Op: "read", Path: "/c", Err: errors.New("permission denied")})

		uc := usecase.NewCheckConfigUseCase(schema.MustDefault(), mockStore)

		// Act
		out, err := uc.Execute(testContext(), usecase.CheckConfigInput{Paths: []string{"/a", "/b", "/c"}, Concurrency: 2})

		// Assert
		require.NoError(t, err)
		require.Len(t, out.Reports, 3)
		assert.False(t, out.Clean())

		a, b, c := out.Reports[0], out.Reports[1], out.Reports[2]
		assert.Equal(t, "/a", a.Path)
		assert.True(t, a.Clean())
		assert.Equal(t, 1, a.Keys)

		assert.Equal(t, "/b", b.Path)
		assert.Equal(t, []string{"font-size"}, b.Flagged)
		kinds := make([]entity.WarningKind, 0, len(b.Warnings))
		for _, w := range b.Warnings {
			kinds = append(kinds, w.Kind)
		}
		assert.ElementsMatch(t, []entity.WarningKind{entity.WarningValidation, entity.WarningMalformedLine}, kinds)

		assert.Equal(t, "/c", c.Path)
		assert.Contains(t, c.Error, "permission denied")
		mock.AssertExpectationsForObjects(t, mockStore)
	})

	t.Run("all clean", func(t *testing.T) {
		mockStore := mocks.NewMockConfigFileStore(t)
		mockStore.EXPECT().Read(mock.Anything, "/a").Return([]byte("# nothing\n"), nil)

		uc := usecase.NewCheckConfigUseCase(schema.MustDefault(), mockStore)

		out, err := uc.Execute(testContext(), usecase.CheckConfigInput{Paths: []string{"/a"}})

		require.NoError(t, err)
		assert.True(t, out.Clean())
	})

	t.Run("cancelled context fails the run", func(t *testing.T) {
		uc := usecase.NewCheckConfigUseCase(schema.MustDefault(), mocks.NewMockConfigFileStore(t))
		ctx, cancel := context.WithCancel(testContext())
		cancel()

		out, err := uc.Execute(ctx, usecase.CheckConfigInput{Paths: []string{"/a"}})

		assert.Nil(t, out)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
