package usecase

import (
	"context"

	"bazroba/internal/domain/entity"
	"bazroba/internal/domain/repository"
	"bazroba/pkg/errors"
	"bazroba/pkg/utils"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// CategoryNode is a category with its direct children attached. The tree is
// two levels deep: roots and their children.
type CategoryNode struct {
	*entity.Category
	Children []*entity.Category `json:"children,omitempty"`
}

type CategoryInput struct {
	Name        string
	Description string
	Image       string
	ParentID    string
	SortOrder   int
}

func (uc *CategoryUseCase) Create(ctx context.Context, input CategoryInput) (*entity.Category, error) {
	slug := utils.Slugify(input.Name)

	existing, err := uc.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("Category already exists", nil)
	}

	if input.ParentID != "" {
		parent, err := uc.categoryRepo.GetByID(ctx, input.ParentID)
		if err != nil {
			return nil, errors.BadRequest("Invalid parent category", err)
		}
		if parent.ParentID != "" {
			return nil, errors.BadRequest("Categories nest at most two levels", nil)
		}
	}

	category := &entity.Category{
		Name:        input.Name,
		Slug:        slug,
		Description: input.Description,
		Image:       input.Image,
		ParentID:    input.ParentID,
		SortOrder:   input.SortOrder,
		IsActive:    true,
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListActive(ctx)
}

// Tree returns the active categories as roots with children attached.
func (uc *CategoryUseCase) Tree(ctx context.Context) ([]*CategoryNode, error) {
	categories, err := uc.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	children := make(map[string][]*entity.Category)
	var roots []*entity.Category
	for _, c := range categories {
		if c.ParentID == "" {
			roots = append(roots, c)
			continue
		}
		children[c.ParentID] = append(children[c.ParentID], c)
	}

	nodes := make([]*CategoryNode, len(roots))
	for i, root := range roots {
		nodes[i] = &CategoryNode{Category: root, Children: children[root.ID]}
	}
	return nodes, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*CategoryNode, error) {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	children, err := uc.categoryRepo.ListChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CategoryNode{Category: category, Children: children}, nil
}

func (uc *CategoryUseCase) GetBySlug(ctx context.Context, slug string) (*CategoryNode, error) {
	category, err := uc.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, errors.NotFound("Category", nil)
	}
	return uc.GetByID(ctx, category.ID)
}

func (uc *CategoryUseCase) Update(ctx context.Context, id string, input CategoryInput) (*entity.Category, error) {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"description": input.Description,
		"sortOrder":   input.SortOrder,
	}
	if input.Name != "" {
		fields["name"] = input.Name
		fields["slug"] = utils.Slugify(input.Name)
	}
	if input.Image != "" {
		fields["image"] = input.Image
	}

	if err := uc.categoryRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}
	return uc.categoryRepo.GetByID(ctx, id)
}

// Remove soft-deletes a category together with its children. Products keep
// their category reference.
func (uc *CategoryUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := uc.categoryRepo.ListChildren(ctx, id)
	if err != nil {
		return err
	}
	for _, child := range children {
		if err := uc.categoryRepo.Update(ctx, child.ID, map[string]interface{}{"isActive": false}); err != nil {
			return err
		}
	}
	return uc.categoryRepo.Update(ctx, id, map[string]interface{}{"isActive": false})
}
