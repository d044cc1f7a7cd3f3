package providers

import (
	"github.com/samber/do/v2"

	"github.com/shelfspace/shelfspace-server/internal/identity"
	"github.com/shelfspace/shelfspace-server/internal/logger"
	"github.com/shelfspace/shelfspace-server/internal/service"
	"github.com/shelfspace/shelfspace-server/internal/validation"
)

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	provider := do.MustInvoke[identity.Provider](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, provider, log.Logger), nil
}

// ProvideShelfService provides the shelf service.
func ProvideShelfService(i do.Injector) (*service.ShelfService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	profiles := do.MustInvoke[*service.ProfileService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewShelfService(storeHandle.Store, profiles, validator, log.Logger), nil
}

// ProvideItemService provides the shelf item service.
func ProvideItemService(i do.Injector) (*service.ItemService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	shelves := do.MustInvoke[*service.ShelfService](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewItemService(storeHandle.Store, shelves, validator, log.Logger), nil
}
