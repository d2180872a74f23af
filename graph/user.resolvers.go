package graph

// This file will be automatically regenerated based on the schema, any resolver
// implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.87

import (
	"context"

	"eats-backend/graph/model"
	"eats-backend/internal/app/users"
)

// CreateAccount is the resolver for the createAccount field.
func (r *mutationResolver) CreateAccount(ctx context.Context, input model.CreateAccountInput) (*model.CoreOutput, error) {
	out := r.Users.CreateAccount(ctx, users.CreateAccountInput{
		Email:    input.Email,
		Password: input.Password,
		Role:     toAccountRole(input.Role),
	})
	return coreOutput(out.OK, out.Error), nil
}

// Login is the resolver for the login field.
func (r *mutationResolver) Login(ctx context.Context, input model.LoginInput) (*model.LoginOutput, error) {
	out := r.Users.Login(ctx, users.LoginInput{Email: input.Email, Password: input.Password})
	return &model.LoginOutput{
		Ok:    out.OK,
		Error: stringPtrOrNil(out.Error),
		Token: stringPtrOrNil(out.Token),
	}, nil
}

// EditProfile is the resolver for the editProfile field.
func (r *mutationResolver) EditProfile(ctx context.Context, input model.EditProfileInput) (*model.CoreOutput, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	out := r.Users.EditProfile(ctx, user.ID, users.EditProfileInput{
		Email:    input.Email,
		Password: input.Password,
	})
	return coreOutput(out.OK, out.Error), nil
}

// VerifyEmail is the resolver for the verifyEmail field.
func (r *mutationResolver) VerifyEmail(ctx context.Context, input model.VerifyEmailInput) (*model.CoreOutput, error) {
	out := r.Users.VerifyEmail(ctx, input.Code)
	return coreOutput(out.OK, out.Error), nil
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*model.User, error) {
	user, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return toUser(user), nil
}

// UserProfile is the resolver for the userProfile field.
func (r *queryResolver) UserProfile(ctx context.Context, input model.UserProfileInput) (*model.UserProfileOutput, error) {
	if _, err := currentUser(ctx); err != nil {
		return nil, err
	}
	out := r.Users.UserProfile(ctx, int64(input.UserID))
	return &model.UserProfileOutput{
		Ok:    out.OK,
		Error: stringPtrOrNil(out.Error),
		User:  toUser(out.User),
	}, nil
}

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
