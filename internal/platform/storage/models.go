package storage

import (
	"encoding/json"
	"fmt"

	"github.com/pricegrid/catalog-linker/internal/platform/models"
	"github.com/samber/lo"

	pgmodels "github.com/pricegrid/catalog-linker/internal/platform/storage/gen/postgres/public/model"
)

//go:generate make -C ../../../ generate-db

func toAppItem(item *pgmodels.SupplierItem) (*models.SupplierItem, error) {
	attrs := map[string]string{}
	if item.Attributes != "" {
		if err := json.Unmarshal([]byte(item.Attributes), &attrs); err != nil {
			return nil, fmt.Errorf("can't decode item attributes: %w", err)
		}
	}

	return &models.SupplierItem{
		ID:           int(item.ID),
		SupplierID:   int(item.SupplierID),
		CategoryID:   toAppID(item.CategoryID),
		Name:         item.Name,
		Description:  item.Description,
		CurrentPrice: item.CurrentPrice,
		InStock:      item.InStock,
		Attributes:   attrs,
		MatchStatus:  models.MatchStatus(item.MatchStatus),
		MatchScore:   item.MatchScore,
		ProductID:    toAppID(item.ProductID),
		ClaimedAt:    item.ClaimedAt,
		ClaimedBy:    item.ClaimedBy,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, nil
}

func toAppProduct(product *pgmodels.Product) *models.Product {
	return &models.Product{
		ID:             int(product.ID),
		Name:           product.Name,
		Status:         models.ProductStatus(product.Status),
		CategoryID:     toAppID(product.CategoryID),
		MinPrice:       product.MinPrice,
		IsAvailable:    product.IsAvailable,
		ReferencePrice: product.ReferencePrice,
		CreatedAt:      product.CreatedAt,
	}
}

func toDBProduct(product *models.Product) *pgmodels.Product {
	return &pgmodels.Product{
		Name:           product.Name,
		Status:         string(product.Status),
		CategoryID:     toDBID(product.CategoryID),
		MinPrice:       product.MinPrice,
		IsAvailable:    product.IsAvailable,
		ReferencePrice: product.ReferencePrice,
	}
}

func toAppReviewEntry(entry *pgmodels.ReviewEntry) (*models.ReviewEntry, error) {
	var candidates []models.Candidate
	if entry.Candidates != "" {
		if err := json.Unmarshal([]byte(entry.Candidates), &candidates); err != nil {
			return nil, fmt.Errorf("can't decode review entry candidates: %w", err)
		}
	}

	return &models.ReviewEntry{
		ID:             int(entry.ID),
		SupplierItemID: int(entry.SupplierItemID),
		Candidates:     candidates,
		Status:         models.ReviewStatus(entry.Status),
		ReviewedBy:     entry.ReviewedBy,
		ReviewedAt:     entry.ReviewedAt,
		CreatedAt:      entry.CreatedAt,
		ExpiresAt:      entry.ExpiresAt,
	}, nil
}

func toDBReviewEntry(entry *models.ReviewEntry) (*pgmodels.ReviewEntry, error) {
	candidates, err := json.Marshal(lo.If(entry.Candidates != nil, entry.Candidates).Else([]models.Candidate{}))
	if err != nil {
		return nil, fmt.Errorf("can't encode review entry candidates: %w", err)
	}

	return &pgmodels.ReviewEntry{
		SupplierItemID: int32(entry.SupplierItemID),
		Candidates:     string(candidates),
		Status:         string(entry.Status),
		ReviewedBy:     entry.ReviewedBy,
		ReviewedAt:     entry.ReviewedAt,
		ExpiresAt:      entry.ExpiresAt,
	}, nil
}

func toDBOverrideRecord(rec *models.OverrideRecord) *pgmodels.OverrideAudit {
	return &pgmodels.OverrideAudit{
		SupplierItemID: int32(rec.SupplierItemID),
		ProductID:      toDBID(rec.ProductID),
		Action:         string(rec.Action),
		Actor:          rec.Actor,
	}
}

func encodeAttributes(attrs map[string]string) (string, error) {
	if attrs == nil {
		attrs = map[string]string{}
	}

	encoded, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("can't encode item attributes: %w", err)
	}

	return string(encoded), nil
}

func toAppID(id *int32) *int {
	if id == nil {
		return nil
	}
	return lo.ToPtr(int(*id))
}

func toDBID(id *int) *int32 {
	if id == nil {
		return nil
	}
	return lo.ToPtr(int32(*id))
}
