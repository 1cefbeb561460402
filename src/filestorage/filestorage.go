package filestorage

import (
	"github.com/andrewyi/scraper/src/entity"
)

type FileStorage interface {
	Store([]entity.ExtractionResult) error
	Load() ([]entity.ExtractionResult, error)
}
