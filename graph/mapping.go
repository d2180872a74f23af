package graph

import (
	"time"

	"eats-backend/graph/model"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
)

func coreOutput(ok bool, errMsg string) *model.CoreOutput {
	return &model.CoreOutput{Ok: ok, Error: stringPtrOrNil(errMsg)}
}

func toUser(u *users.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:        int32(u.ID),
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
		Email:     u.Email,
		Role:      model.UserRole(u.Role),
		Verified:  u.Verified,
	}
}

func toCategory(c *restaurants.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		ID:              int32(c.ID),
		Name:            c.Name,
		CoverImg:        stringPtrOrNil(c.CoverImg),
		Slug:            c.Slug,
		RestaurantCount: int32(c.RestaurantCount),
	}
}

func toCategories(cs []restaurants.Category) []*model.Category {
	out := make([]*model.Category, 0, len(cs))
	for i := range cs {
		out = append(out, toCategory(&cs[i]))
	}
	return out
}

func toRestaurant(r *restaurants.Restaurant) *model.Restaurant {
	if r == nil {
		return nil
	}
	out := &model.Restaurant{
		ID:       int32(r.ID),
		Name:     r.Name,
		CoverImg: stringPtrOrNil(r.CoverImg),
		Address:  r.Address,
		Category: toCategory(r.Category),
		OwnerID:  int32(r.OwnerID),
		Menu:     make([]*model.Dish, 0, len(r.Menu)),
	}
	for i := range r.Menu {
		out.Menu = append(out.Menu, toDish(&r.Menu[i]))
	}
	return out
}

func toRestaurants(rs []restaurants.Restaurant) []*model.Restaurant {
	out := make([]*model.Restaurant, 0, len(rs))
	for i := range rs {
		out = append(out, toRestaurant(&rs[i]))
	}
	return out
}

func toDish(d *restaurants.Dish) *model.Dish {
	out := &model.Dish{
		ID:           int32(d.ID),
		Name:         d.Name,
		Price:        int32(d.Price),
		Photo:        stringPtrOrNil(d.Photo),
		Description:  d.Description,
		RestaurantID: int32(d.RestaurantID),
	}
	for _, o := range d.Options {
		opt := &model.DishOption{Name: o.Name, Extra: toInt32Ptr(o.Extra)}
		for _, c := range o.Choices {
			opt.Choices = append(opt.Choices, &model.DishChoice{Name: c.Name, Extra: toInt32Ptr(c.Extra)})
		}
		out.Options = append(out.Options, opt)
	}
	return out
}

func fromDishOptions(in []*model.DishOptionInput) []restaurants.DishOption {
	if in == nil {
		return nil
	}
	out := make([]restaurants.DishOption, 0, len(in))
	for _, o := range in {
		if o == nil {
			continue
		}
		opt := restaurants.DishOption{Name: o.Name, Extra: toIntPtr(o.Extra)}
		for _, c := range o.Choices {
			if c == nil {
				continue
			}
			opt.Choices = append(opt.Choices, restaurants.DishChoice{Name: c.Name, Extra: toIntPtr(c.Extra)})
		}
		out = append(out, opt)
	}
	return out
}

func toAccountRole(r model.UserRole) auth.Role {
	return auth.Role(r)
}

func idIfOK(ok bool, id int64) *int32 {
	if !ok {
		return nil
	}
	v := int32(id)
	return &v
}

func pagingIfOK(ok bool, pages int, total int64) (*int32, *int32) {
	if !ok {
		return nil, nil
	}
	p, t := int32(pages), int32(total)
	return &p, &t
}

func toInt32Ptr(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v)
	return &n
}

func toIntPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
