package equipmenthistory_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	equipmenthistory "github.com/KirkDiggler/rpg-equipment/internal/repositories/equipment_history"
)

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &contractSuite{
		newRepo: func(opts equipmenthistory.Options) equipmenthistory.Repository {
			return equipmenthistory.NewInMemory(opts)
		},
	})
}
