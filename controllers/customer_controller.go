package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/config"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/models"
	"github.com/bhaskarBabu123/Sai-Motors-Management-backend/utils"
)

type CustomerInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
	Email   string `json:"email"`
}

func CreateCustomer(c *gin.Context) {
	var in CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var exist int64
	config.DB.Model(&models.Customer{}).Where("phone = ?", in.Phone).Count(&exist)
	if exist > 0 {
		utils.Error(c, http.StatusBadRequest, "Phone number already registered", nil)
		return
	}

	customer := models.Customer{
		Name:    in.Name,
		Phone:   in.Phone,
		Address: in.Address,
		Email:   in.Email,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Error(c, http.StatusBadRequest, "Phone number already registered", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to save customer", err)
		return
	}
	utils.Created(c, "Customer added", customer)
}

var customerSortCols = map[string]string{
	"name":               "name",
	"total_spent":        "total_spent",
	"total_bikes_bought": "total_bikes_bought",
	"last_purchase_date": "last_purchase_date",
	"created_at":         "created_at",
}

func GetAllCustomers(c *gin.Context) {
	p := parseListParams(c)
	q := config.DB.Model(&models.Customer{})

	if t := c.Query("customer_type"); t != "" {
		q = q.Where("customer_type = ?", t)
	}
	q = applySearch(q, p.Search, []string{"name", "phone", "address"})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch customers", err)
		return
	}

	var customers []models.Customer
	q = applySort(q, p.Sort, customerSortCols, "id DESC")
	if err := paginate(q, p).Find(&customers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to fetch customers", err)
		return
	}
	listResponse(c, "Customers fetched", customers, total, p)
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}
	utils.Success(c, "Customer fetched", customer)
}

type CustomerUpdateInput struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email"`
}

// UpdateCustomer edits contact fields only. Phone is the identity key and the
// aggregates belong to the sale workflow.
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var in CustomerUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}

	if err := config.DB.Save(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to update customer", err)
		return
	}
	utils.Success(c, "Customer updated", customer)
}

func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}
	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}

	var sales int64
	config.DB.Model(&models.Sale{}).Where("customer_id = ?", customer.ID).Count(&sales)
	if sales > 0 {
		utils.Error(c, http.StatusBadRequest, "Customer has sale records and cannot be deleted", nil)
		return
	}

	if err := config.DB.Delete(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Failed to delete customer", err)
		return
	}
	utils.Success(c, "Customer deleted", nil)
}

func CustomerStatsOverview(c *gin.Context) {
	var stats struct {
		Total      int64   `json:"total"`
		Regular    int64   `json:"regular"`
		Premium    int64   `json:"premium"`
		VIP        int64   `json:"vip"`
		TotalSpent float64 `json:"total_spent"`
	}
	config.DB.Model(&models.Customer{}).Count(&stats.Total)
	config.DB.Model(&models.Customer{}).Where("customer_type = ?", models.CustomerRegular).Count(&stats.Regular)
	config.DB.Model(&models.Customer{}).Where("customer_type = ?", models.CustomerPremium).Count(&stats.Premium)
	config.DB.Model(&models.Customer{}).Where("customer_type = ?", models.CustomerVIP).Count(&stats.VIP)
	config.DB.Model(&models.Customer{}).Select("COALESCE(SUM(total_spent), 0)").Scan(&stats.TotalSpent)

	utils.Success(c, "Customer stats", stats)
}
