package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

// GroupStore defines database operations for reading-list groups.
type GroupStore interface {
	GetAllGroups() ([]entities.Group, error)
	GetGroupByID(id uint) (*entities.Group, error)
	DeleteGroup(id uint) error
}

type GroupsController struct {
	store GroupStore
}

func NewGroupsController(store GroupStore) *GroupsController {
	return &GroupsController{store: store}
}

// GetAllGroups handles GET /api/groups
func (gc *GroupsController) GetAllGroups(c *gin.Context) {
	groups, err := gc.store.GetAllGroups()
	if err != nil {
		respondInternalError(c, err, "get all groups")
		return
	}
	if groups == nil {
		groups = []entities.Group{}
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /api/groups/:id
func (gc *GroupsController) GetGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	group, err := gc.store.GetGroupByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "get group")
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/groups/:id
func (gc *GroupsController) DeleteGroup(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := gc.store.GetGroupByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "group")
			return
		}
		respondInternalError(c, err, "get group")
		return
	}

	if err := gc.store.DeleteGroup(id); err != nil {
		respondInternalError(c, err, "delete group")
		return
	}
	respondSuccess(c, "group deleted")
}
