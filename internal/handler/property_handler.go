package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/entity"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/middleware"
	"github.com/Mathiyarasan2102/LuxeEstate-RealEstate-Website-Backend/internal/usecase"
)

// maxUploadBytes caps a whole multipart upload request.
const maxUploadBytes = 32 << 20

type PropertyHandler struct {
	propertyUC *usecase.PropertyUsecase
	logger     *zap.Logger
}

func NewPropertyHandler(propertyUC *usecase.PropertyUsecase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: propertyUC,
		logger:     logger.Named("PropertyHandler"),
	}
}

type propertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Location     location `json:"location"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	AreaSqft     float64  `json:"areaSqft"`
	PropertyType string   `json:"propertyType"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
	CoverImage   string   `json:"coverImage"`

	ApprovalStatus *string `json:"approvalStatus"`
	IsArchived     *bool   `json:"isArchived"`
}

type location struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func (req *propertyRequest) toInput() usecase.PropertyInput {
	return usecase.PropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Location: entity.Location{
			Address: req.Location.Address,
			City:    req.Location.City,
			State:   req.Location.State,
			Country: req.Location.Country,
		},
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		AreaSqft:     req.AreaSqft,
		PropertyType: req.PropertyType,
		Amenities:    req.Amenities,
		Images:       req.Images,
		CoverImage:   req.CoverImage,
	}
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := entity.PropertyFilter{
		Search: query.Get("search"),
		City:   query.Get("city"),
	}
	filter.PropertyType = query.Get("type")
	if filter.PropertyType == "" {
		filter.PropertyType = query.Get("propertyType")
	}
	filter.MinPrice, _ = strconv.ParseFloat(query.Get("minPrice"), 64)
	filter.MaxPrice, _ = strconv.ParseFloat(query.Get("maxPrice"), 64)
	filter.Bedrooms, _ = strconv.Atoi(query.Get("bedrooms"))
	filter.Bathrooms, _ = strconv.Atoi(query.Get("bathrooms"))
	filter.Page, _ = strconv.ParseInt(query.Get("page"), 10, 64)
	filter.Limit, _ = strconv.ParseInt(query.Get("limit"), 10, 64)

	properties, total, err := h.propertyUC.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 12
	}
	pages := (total + limit - 1) / limit

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"properties": toPropertyResponses(properties),
		"page":       page,
		"pages":      pages,
		"total":      total,
	})
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	property, err := h.propertyUC.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponse(property))
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	property, err := h.propertyUC.Create(r.Context(), actor, req.toInput())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, toPropertyResponse(property))
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	var req propertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := usecase.PropertyUpdate{PropertyInput: req.toInput(), IsArchived: req.IsArchived}
	if req.ApprovalStatus != nil {
		status := entity.ApprovalStatus(*req.ApprovalStatus)
		update.ApprovalStatus = &status
	}

	property, err := h.propertyUC.Update(r.Context(), actor, id, update)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponse(property))
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	if err := h.propertyUC.Delete(r.Context(), actor, id); err != nil {
		respondError(w, err)
		return
	}
	respondMessage(w, http.StatusOK, "Property removed")
}

func (h *PropertyHandler) Publish(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	property, err := h.propertyUC.Publish(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponse(property))
}

func (h *PropertyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid property id")
		return
	}

	stats, err := h.propertyUC.Stats(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, statsResponse{
		Views:         stats.Views,
		Inquiries:     stats.Inquiries,
		WishlistCount: stats.WishlistCount,
	})
}

func (h *PropertyHandler) MyListings(w http.ResponseWriter, r *http.Request) {
	actor := middleware.UserFromContext(r)
	properties, err := h.propertyUC.AgentListings(r.Context(), actor.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponses(properties))
}

func (h *PropertyHandler) AdminListings(w http.ResponseWriter, r *http.Request) {
	properties, err := h.propertyUC.AdminListings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toPropertyResponses(properties))
}

// Upload accepts multipart images under the "images" field and returns
// the stored URLs in submission order.
func (h *PropertyHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		respondMessage(w, http.StatusBadRequest, "No images provided")
		return
	}

	uploads := make([]usecase.UploadFile, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Failed to read uploaded file")
			return
		}
		uploads = append(uploads, usecase.UploadFile{Name: header.Filename, Data: data})
	}

	urls, err := h.propertyUC.UploadImages(r.Context(), uploads)
	if err != nil {
		h.logger.Error("Image upload failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "Image upload failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string][]string{"urls": urls})
}
