package graph_test

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eats-backend/graph"
	"eats-backend/internal/app/restaurants"
	"eats-backend/internal/app/users"
	"eats-backend/internal/auth"
	"eats-backend/internal/guard"
)

type stubDirectory map[int64]*users.User

func (d stubDirectory) FindByID(_ context.Context, id int64) (*users.User, error) {
	u, ok := d[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

type gqlError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []gqlError     `json:"errors"`
}

type testServer struct {
	srv    *handler.Server
	tokens *auth.TokenService
}

const (
	clientID int64 = 1
	ownerID  int64 = 42
	ghostID  int64 = 99
)

func newTestServer(t *testing.T, catalog *mockCatalog) *testServer {
	t.Helper()

	r := &graph.Resolver{Users: &mockUserService{}, Catalog: catalog}
	tokens := auth.NewTokenService("graph-test-secret", 0)
	dir := stubDirectory{
		clientID: {ID: clientID, Email: "client@example.com", Role: auth.RoleClient},
		ownerID:  owner(),
	}
	g := guard.New(graph.NewRegistry(graph.Operations()), tokens, dir)

	srv := handler.New(graph.NewExecutableSchema(graph.Config{Resolvers: r}))
	srv.AddTransport(transport.POST{})
	srv.Use(extension.Introspection{})
	srv.AroundFields(graph.AuthorizeRootFields(g, zerolog.Nop()))

	return &testServer{srv: srv, tokens: tokens}
}

func (s *testServer) tokenFor(t *testing.T, id int64) string {
	t.Helper()
	tok, err := s.tokens.Sign(id)
	require.NoError(t, err)
	return tok
}

func (s *testServer) do(t *testing.T, token, query string, vars map[string]any) gqlResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": query, "variables": vars})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req = req.WithContext(auth.WithToken(req.Context(), token))
	}
	rec := httptest.NewRecorder()
	s.srv.ServeHTTP(rec, req)

	var out gqlResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireForbidden(t *testing.T, res gqlResponse, field string) {
	t.Helper()
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Forbidden resource", res.Errors[0].Message)
	assert.Equal(t, "FORBIDDEN", res.Errors[0].Extensions["code"])
	assert.Equal(t, []any{field}, res.Errors[0].Path)
	assert.Nil(t, res.Data)
}

const createRestaurantMutation = `mutation($in: CreateRestaurantInput!) {
  createRestaurant(input: $in) { ok error restaurantId }
}`

var createRestaurantVars = map[string]any{
	"in": map[string]any{"name": "Napoli", "address": "1 Main St", "categoryName": "Pizza"},
}

func TestGraphQL_PublicOperationWithoutToken(t *testing.T) {
	s := newTestServer(t, &mockCatalog{
		allCategoriesFn: func(context.Context) restaurants.AllCategoriesOutput {
			return restaurants.AllCategoriesOutput{Output: okOutput, Categories: []restaurants.Category{
				{ID: 1, Name: "pizza", Slug: "pizza", RestaurantCount: 3},
			}}
		},
	})

	res := s.do(t, "", `{ allCategories { ok error categories { slug restaurantCount coverImg } } }`, nil)
	require.Empty(t, res.Errors)

	out := res.Data["allCategories"].(map[string]any)
	assert.Equal(t, true, out["ok"])
	assert.Nil(t, out["error"])
	cats := out["categories"].([]any)
	require.Len(t, cats, 1)
	assert.Equal(t, map[string]any{"slug": "pizza", "restaurantCount": float64(3), "coverImg": nil}, cats[0])
}

func TestGraphQL_PublicOperationIgnoresBadToken(t *testing.T) {
	s := newTestServer(t, &mockCatalog{})

	res := s.do(t, "not-a-token", `{ restaurants(input: {}) { ok } }`, nil)
	require.Empty(t, res.Errors)
	assert.Equal(t, map[string]any{"ok": true}, res.Data["restaurants"])
}

func TestGraphQL_ProtectedOperationDenied(t *testing.T) {
	called := false
	s := newTestServer(t, &mockCatalog{
		createRestaurantFn: func(context.Context, int64, restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput {
			called = true
			return restaurants.CreateRestaurantOutput{Output: okOutput}
		},
	})

	cases := map[string]string{
		"missing token":     "",
		"malformed token":   "abc.def.ghi",
		"foreign signature": mustSign(t, auth.NewTokenService("someone-else", 0), ownerID),
		"unknown subject":   s.tokenFor(t, ghostID),
		"wrong role":        s.tokenFor(t, clientID),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			res := s.do(t, token, createRestaurantMutation, createRestaurantVars)
			requireForbidden(t, res, "createRestaurant")
		})
	}
	assert.False(t, called, "resolver must not run for denied requests")
}

func TestGraphQL_OwnerRunsOwnerOperation(t *testing.T) {
	var gotOwner int64
	var gotIn restaurants.CreateRestaurantInput
	s := newTestServer(t, &mockCatalog{
		createRestaurantFn: func(_ context.Context, id int64, in restaurants.CreateRestaurantInput) restaurants.CreateRestaurantOutput {
			gotOwner, gotIn = id, in
			return restaurants.CreateRestaurantOutput{Output: okOutput, RestaurantID: 7}
		},
	})

	res := s.do(t, s.tokenFor(t, ownerID), createRestaurantMutation, createRestaurantVars)
	require.Empty(t, res.Errors)

	assert.Equal(t, map[string]any{"ok": true, "error": nil, "restaurantId": float64(7)}, res.Data["createRestaurant"])
	assert.Equal(t, ownerID, gotOwner)
	assert.Equal(t, "Napoli", gotIn.Name)
	assert.Equal(t, "Pizza", gotIn.CategoryName)
	assert.Empty(t, gotIn.CoverImg)
}

func TestGraphQL_AnyRoleOperation(t *testing.T) {
	s := newTestServer(t, &mockCatalog{})

	query := `query {
  whoami: me { ...identity __typename }
}
fragment identity on User { id email role verified }`

	res := s.do(t, s.tokenFor(t, clientID), query, nil)
	require.Empty(t, res.Errors)
	assert.Equal(t, map[string]any{
		"id":         float64(clientID),
		"email":      "client@example.com",
		"role":       "Client",
		"verified":   false,
		"__typename": "User",
	}, res.Data["whoami"])

	res = s.do(t, "", query, nil)
	requireForbidden(t, res, "whoami")
}

func TestGraphQL_InlineArgumentsAndDefaults(t *testing.T) {
	var gotSlug string
	var gotPage int
	s := newTestServer(t, &mockCatalog{
		categoryFn: func(_ context.Context, slug string, page int) restaurants.CategoryOutput {
			gotSlug, gotPage = slug, page
			return restaurants.CategoryOutput{
				Output:       okOutput,
				Category:     &restaurants.Category{ID: 2, Name: "sushi bar", Slug: slug},
				Restaurants:  []restaurants.Restaurant{{ID: 5, Name: "Kyoto", OwnerID: ownerID}},
				TotalPages:   1,
				TotalResults: 1,
			}
		},
	})

	res := s.do(t, "", `{ category(input: {slug: "sushi-bar"}) {
  totalPages totalResults
  category { name }
  restaurants { id name menu { id } }
} }`, nil)
	require.Empty(t, res.Errors)

	assert.Equal(t, "sushi-bar", gotSlug)
	assert.Equal(t, 1, gotPage)
	out := res.Data["category"].(map[string]any)
	assert.Equal(t, float64(1), out["totalPages"])
	assert.Equal(t, map[string]any{"name": "sushi bar"}, out["category"])
	assert.Equal(t, []any{map[string]any{"id": float64(5), "name": "Kyoto", "menu": []any{}}}, out["restaurants"])
}

func TestGraphQL_MixedSelectionNullsData(t *testing.T) {
	s := newTestServer(t, &mockCatalog{})

	res := s.do(t, "", `{ allCategories { ok } me { id } }`, nil)
	requireForbidden(t, res, "me")
}

func TestGraphQL_ResolverPanicIsRecovered(t *testing.T) {
	s := newTestServer(t, &mockCatalog{
		restaurantFn: func(context.Context, int64) restaurants.RestaurantOutput {
			panic("boom")
		},
	})

	res := s.do(t, "", `{ restaurant(input: {restaurantId: 1}) { ok } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []any{"restaurant"}, res.Errors[0].Path)
	assert.Nil(t, res.Data)
}

func TestGraphQL_Introspection(t *testing.T) {
	s := newTestServer(t, &mockCatalog{})

	res := s.do(t, "", `{
  __schema { queryType { name } mutationType { name } }
  __type(name: "Restaurant") { kind fields { name type { kind ofType { name } } } }
}`, nil)
	require.Empty(t, res.Errors)

	schema := res.Data["__schema"].(map[string]any)
	assert.Equal(t, map[string]any{"name": "Query"}, schema["queryType"])
	assert.Equal(t, map[string]any{"name": "Mutation"}, schema["mutationType"])

	typ := res.Data["__type"].(map[string]any)
	assert.Equal(t, "OBJECT", typ["kind"])
	var names []string
	for _, f := range typ["fields"].([]any) {
		names = append(names, f.(map[string]any)["name"].(string))
	}
	assert.Contains(t, names, "menu")
	assert.Contains(t, names, "ownerId")
}

func TestGraphQL_IntOutsideInt32IsRejected(t *testing.T) {
	called := false
	s := newTestServer(t, &mockCatalog{
		allRestaurantsFn: func(context.Context, int) restaurants.RestaurantsOutput {
			called = true
			return restaurants.RestaurantsOutput{Output: okOutput}
		},
	})

	t.Run("inline literal", func(t *testing.T) {
		res := s.do(t, "", `{ restaurants(input: {page: 9223372036854775807}) { ok } }`, nil)
		require.NotEmpty(t, res.Errors)
		assert.Nil(t, res.Data)
	})
	t.Run("variable", func(t *testing.T) {
		res := s.do(t, "", `query($p: Int) { restaurants(input: {page: $p}) { ok } }`,
			map[string]any{"p": 5000000000})
		require.NotEmpty(t, res.Errors)
		assert.Nil(t, res.Data)
	})
	assert.False(t, called, "resolver must not see an out of range page")
}

func TestGraphQL_Int32BoundsReachResolver(t *testing.T) {
	var gotPage int
	s := newTestServer(t, &mockCatalog{
		allRestaurantsFn: func(_ context.Context, page int) restaurants.RestaurantsOutput {
			gotPage = page
			return restaurants.RestaurantsOutput{Output: okOutput}
		},
	})

	res := s.do(t, "", `query($p: Int) { restaurants(input: {page: $p}) { ok } }`,
		map[string]any{"p": math.MaxInt32})
	require.Empty(t, res.Errors)
	assert.Equal(t, math.MaxInt32, gotPage)
}

func TestGraphQL_DeniedMutationNullsData(t *testing.T) {
	s := newTestServer(t, &mockCatalog{})

	res := s.do(t, s.tokenFor(t, clientID), `mutation {
  verifyEmail(input: {code: "abc"}) { ok }
  deleteDish(input: {dishId: 1}) { ok }
}`, nil)
	requireForbidden(t, res, "deleteDish")
}

func TestOperations_CoverSchemaRootFields(t *testing.T) {
	ops := graph.Operations()
	known := make(map[string]bool)
	for _, name := range graph.OperationNames(ops) {
		assert.False(t, known[name], "duplicate operation %s", name)
		known[name] = true
	}

	schema := graph.NewExecutableSchema(graph.Config{Resolvers: &graph.Resolver{}}).Schema()
	var fields []string
	for _, def := range []string{"Query", "Mutation"} {
		for _, f := range schema.Types[def].Fields {
			if strings.HasPrefix(f.Name, "__") {
				continue
			}
			fields = append(fields, def+"."+f.Name)
		}
	}
	sort.Strings(fields)

	names := graph.OperationNames(ops)
	sort.Strings(names)
	assert.Equal(t, fields, names)
}

func TestNewRegistry_PublicOperations(t *testing.T) {
	ops := graph.Operations()
	reg := graph.NewRegistry(ops)

	assert.Equal(t, []string{
		"Mutation.createAccount",
		"Mutation.login",
		"Mutation.verifyEmail",
		"Query.allCategories",
		"Query.category",
		"Query.restaurant",
		"Query.restaurants",
		"Query.searchRestaurant",
	}, reg.PublicOf(graph.OperationNames(ops)))

	roles, guarded := reg.Roles("Mutation.deleteDish")
	require.True(t, guarded)
	assert.Equal(t, []auth.Role{auth.RoleOwner}, roles)

	roles, guarded = reg.Roles("Query.me")
	require.True(t, guarded)
	assert.Equal(t, []auth.Role{auth.RoleAny}, roles)
}

func mustSign(t *testing.T, s *auth.TokenService, id int64) string {
	t.Helper()
	tok, err := s.Sign(id)
	require.NoError(t, err)
	return tok
}
