package usecase

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves configuration schema information.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
// Empty fields do not filter.
type GetConfigSchemaInput struct {
	Tab      string
	Section  string
	Platform entity.Platform
	// Query fuzzy-matches key names; matches are ranked best first.
	Query string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Keys []entity.ConfigKeyInfo
}

// Execute retrieves the configuration keys matching the input filters.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, in GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	keys := uc.provider.GetSchema()

	filtered := make([]entity.ConfigKeyInfo, 0, len(keys))
	for _, k := range keys {
		if in.Tab != "" && !strings.EqualFold(k.Tab, in.Tab) {
			continue
		}
		if in.Section != "" && !strings.EqualFold(k.Section, in.Section) {
			continue
		}
		if in.Platform != "" && !k.AppliesTo(in.Platform) {
			continue
		}
		filtered = append(filtered, k)
	}

	if in.Query != "" {
		filtered = rank(filtered, in.Query)
	}

	return &GetConfigSchemaOutput{
		Keys: filtered,
	}, nil
}

type keyInfos []entity.ConfigKeyInfo

func (k keyInfos) String(i int) string { return k[i].Key }
func (k keyInfos) Len() int            { return len(k) }

func rank(keys []entity.ConfigKeyInfo, query string) []entity.ConfigKeyInfo {
	matches := fuzzy.FindFrom(query, keyInfos(keys))
	out := make([]entity.ConfigKeyInfo, 0, len(matches))
	for _, m := range matches {
		out = append(out, keys[m.Index])
	}
	return out
}
