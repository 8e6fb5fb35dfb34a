package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"HRDeskGo/config"
	"HRDeskGo/models"
	"HRDeskGo/utils"
)

// EmployeeController serves the employee directory.
type EmployeeController struct{}

// ListEmployees returns directory entries, optionally filtered by a
// search term over name, position and department.
func (ec *EmployeeController) ListEmployees(c *gin.Context) {
	query := config.DB.Order("name ASC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR position LIKE ? OR department LIKE ?", like, like, like)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		config.Logger.Errorw("employee list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch employees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// CreateEmployee adds a directory entry.
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee := models.Employee{
		ID:         utils.GenerateID(),
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Location:   req.Location,
		ImageURL:   req.ImageURL,
		CreatedAt:  time.Now(),
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		config.Logger.Errorw("employee creation failed", "error", err, "name", req.Name)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employee": employee})
}
