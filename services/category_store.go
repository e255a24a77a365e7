package services

import (
	"context"

	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryStore serves the navigation tree and listing-page breadcrumbs.
// Both depend only on the category hierarchy, never on active filters.
type CategoryStore interface {
	Tree(ctx context.Context) ([]models.CategoryNode, error)
	Breadcrumb(ctx context.Context, slug string) ([]models.BreadcrumbItem, error)
}

type GormCategoryStore struct {
	db *gorm.DB
}

func NewGormCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{db: db}
}

type categoryRow struct {
	ID           uuid.UUID
	Name         string
	Slug         string
	ParentID     *uuid.UUID
	ProductCount int
}

// Tree assembles parents with their children and per-node product counts in
// one pass over a single grouped query.
func (s *GormCategoryStore) Tree(ctx context.Context) ([]models.CategoryNode, error) {
	query := `
		SELECT
			c.id,
			c.name,
			c.slug,
			c.parent_id,
			COUNT(p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.sub_category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.name, c.slug, c.parent_id
		ORDER BY c.name ASC
	`
	var rows []categoryRow
	if err := s.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}

	parents := make([]models.CategoryNode, 0)
	childrenByParent := make(map[uuid.UUID][]models.CategoryNode)
	for _, row := range rows {
		node := models.CategoryNode{
			ID:           row.ID,
			Name:         row.Name,
			Slug:         row.Slug,
			ProductCount: row.ProductCount,
		}
		if row.ParentID == nil {
			parents = append(parents, node)
		} else {
			childrenByParent[*row.ParentID] = append(childrenByParent[*row.ParentID], node)
		}
	}

	for i := range parents {
		children := childrenByParent[parents[i].ID]
		parents[i].Children = children
		for _, child := range children {
			parents[i].ProductCount += child.ProductCount
		}
	}
	return parents, nil
}

// Breadcrumb builds Home > Parent > Sub-category for a listing page.
// Unknown slugs yield ErrScopeNotFound so the page can 404 instead of
// rendering a dangling trail.
func (s *GormCategoryStore) Breadcrumb(ctx context.Context, slug string) ([]models.BreadcrumbItem, error) {
	var row struct {
		Name       string
		Slug       string
		ParentName *string
		ParentSlug *string
	}
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			child.name,
			child.slug,
			parent.name AS parent_name,
			parent.slug AS parent_slug
		FROM categories child
		LEFT JOIN categories parent ON parent.id = child.parent_id
		WHERE child.slug = ? AND child.status = 'Active'
	`, slug).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.Slug == "" {
		return nil, ErrScopeNotFound
	}

	trail := []models.BreadcrumbItem{{Label: "Home", Href: "/"}}
	if row.ParentName != nil && row.ParentSlug != nil {
		trail = append(trail, models.BreadcrumbItem{
			Label: *row.ParentName,
			Href:  "/store/" + *row.ParentSlug,
		})
	}
	trail = append(trail, models.BreadcrumbItem{
		Label: row.Name,
		Href:  "/store/" + row.Slug,
	})
	return trail, nil
}
