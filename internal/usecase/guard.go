package usecase

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
)

// CanManage is the single ownership predicate evaluated before every guarded
// mutation: admins may act on any resource, everyone else only on resources
// they own.
func CanManage(actorID primitive.ObjectID, actorRole entity.Role, ownerID primitive.ObjectID) bool {
	if actorRole == entity.RoleAdmin {
		return true
	}
	return actorID == ownerID
}
