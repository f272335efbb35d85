package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostedit/internal/application/port/mocks"
	"github.com/bnema/ghostedit/internal/application/usecase"
	"github.com/bnema/ghostedit/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "font-size",
			Label:       "Font Size",
			Type:        "number",
			Default:     "13",
			Description: "Font size in points",
			Range:       "1-500 pt",
			Tab:         "Appearance",
			Section:     "Font",
		},
		{
			Key:     "cursor-style",
			Type:    "enum",
			Default: "block",
			Values:  []string{"block", "bar", "underline", "block_hollow"},
			Tab:     "Appearance",
			Section: "Cursor",
		},
		{
			Key:       "macos-option-as-alt",
			Type:      "enum",
			Platforms: []entity.Platform{entity.PlatformMacOS},
			Tab:       "Platform",
			Section:   "macOS",
		},
		{
			Key:        "keybind",
			Type:       "keybinding",
			Repeatable: true,
			Tab:        "Keybindings",
			Section:    "Keybindings",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result.Keys, 4)
		assert.Equal(t, "font-size", result.Keys[0].Key)
		assert.Equal(t, "keybind", result.Keys[3].Key)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result.Keys)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by tab and section", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Tab: "appearance", Section: "Cursor"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "cursor-style", result.Keys[0].Key)
		assert.Equal(t, []string{"block", "bar", "underline", "block_hollow"}, result.Keys[0].Values)
	})

	t.Run("filters by platform", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Platform: entity.PlatformLinux})

		// Assert
		require.NoError(t, err)
		assert.Len(t, result.Keys, 3)
		for _, k := range result.Keys {
			assert.NotEqual(t, "macos-option-as-alt", k.Key)
		}
	})

	t.Run("query ranks fuzzy matches", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Query: "fsize"})

		// Assert
		require.NoError(t, err)
		require.NotEmpty(t, result.Keys)
		assert.Equal(t, "font-size", result.Keys[0].Key)
	})
}
