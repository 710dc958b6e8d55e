//go:generate goverter gen github.com/DRSN-tech/catalog-backend/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
)

// goverter:converter
type ProductDTOConverter interface {
	ToRedisModel(entity *usecase.ProductDTO) *ProductDTORedisModel
	ToUseCase(model *ProductDTORedisModel) *usecase.ProductDTO
}
