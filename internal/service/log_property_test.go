package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/EndpointLog/internal/domain"
	"github.com/Egor213/EndpointLog/internal/metrics"
	"github.com/Egor213/EndpointLog/internal/repo"
	"github.com/Egor213/EndpointLog/internal/revalidate"
	"github.com/Egor213/EndpointLog/internal/service"
	"github.com/Egor213/EndpointLog/pkg/clock"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logInput struct {
	LogType  domain.LogType
	PostType domain.PostType
	Message  string
	// Endpoint is an index into the fixture endpoints.
	Endpoint int
	// Offset shifts CreatedAt so the inputs arrive out of order.
	Offset int
}

type fixture struct {
	logs      service.Log
	endpoints service.Endpoint
	epIDs     []string
	epOwners  []string
	clock     *offsetClock
}

type offsetClock struct {
	base   time.Time
	offset time.Duration
}

func (c *offsetClock) Now() time.Time { return c.base.Add(c.offset) }

func newFixture(t *testing.T, c clock.Clock) (service.Log, service.Endpoint) {
	t.Helper()
	svc := service.NewServices(service.ServicesDependencies{
		Repos:       repo.NewMemoryRepositories(),
		Counters:    metrics.NewTestCounters(),
		Revalidator: revalidate.Nop{},
		Clock:       c,
	})
	return svc.Log, svc.Endpoint
}

func newPropertyFixture(t *testing.T) *fixture {
	t.Helper()
	c := &offsetClock{base: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)}
	logs, endpoints := newFixture(t, c)

	f := &fixture{logs: logs, endpoints: endpoints, clock: c}
	for _, owner := range []string{"u1", "u1", "u2", "u3"} {
		id, err := endpoints.CreateEndpoint(context.Background(), "endpoint of "+owner, owner)
		require.NoError(t, err)
		f.epIDs = append(f.epIDs, id)
		f.epOwners = append(f.epOwners, owner)
	}
	return f
}

func genLogInput() gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(domain.LogTypeSuccess, domain.LogTypeError),
		gen.OneConstOf(domain.PostTypeHTTP, domain.PostTypeForm),
		gen.AnyString(),
		gen.IntRange(0, 3),
		gen.IntRange(-1000, 1000),
	).Map(func(vals []interface{}) logInput {
		return logInput{
			LogType:  vals[0].(domain.LogType),
			PostType: vals[1].(domain.PostType),
			Message:  vals[2].(string),
			Endpoint: vals[3].(int),
			Offset:   vals[4].(int),
		}
	})
}

func TestLogService_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	ctx := context.Background()

	properties.Property("created log is listed once with a payload matching its type", prop.ForAll(
		func(in logInput) bool {
			f := newPropertyFixture(t)
			f.clock.offset = time.Duration(in.Offset) * time.Second

			id, err := f.logs.CreateLog(ctx, in.LogType, in.PostType, in.Message, f.epIDs[in.Endpoint])
			if err != nil {
				return false
			}

			rows, err := f.logs.GetLogs(ctx, f.epOwners[in.Endpoint])
			if err != nil {
				return false
			}

			var found []domain.LogRow
			for _, r := range rows {
				if r.ID == id {
					found = append(found, r)
				}
			}
			if len(found) != 1 {
				return false
			}

			row := found[0]
			var wantMsg domain.Message = domain.ErrorMessage{Error: in.Message}
			if in.LogType == domain.LogTypeSuccess {
				wantMsg = domain.SuccessMessage{Value: in.Message}
			}

			return row.Type == in.LogType &&
				row.PostType == in.PostType &&
				row.Message == wantMsg &&
				row.EndpointID == f.epIDs[in.Endpoint] &&
				row.Endpoint == "endpoint of "+f.epOwners[in.Endpoint]
		},
		genLogInput(),
	))

	properties.Property("listing is newest first and scoped to the owner", prop.ForAll(
		func(inputs []logInput) bool {
			f := newPropertyFixture(t)

			for _, in := range inputs {
				f.clock.offset = time.Duration(in.Offset) * time.Second
				if _, err := f.logs.CreateLog(ctx, in.LogType, in.PostType, in.Message, f.epIDs[in.Endpoint]); err != nil {
					return false
				}
			}

			for _, user := range []string{"u1", "u2", "u3", "nobody"} {
				rows, err := f.logs.GetLogs(ctx, user)
				if err != nil {
					return false
				}

				want := 0
				for _, in := range inputs {
					if f.epOwners[in.Endpoint] == user {
						want++
					}
				}
				if len(rows) != want {
					return false
				}

				for i := range rows {
					if i > 0 && rows[i-1].CreatedAt.Before(rows[i].CreatedAt) {
						return false
					}
					if rows[i].Endpoint != "endpoint of "+user {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(genLogInput()),
	))

	properties.Property("deleted log disappears and unknown ids are a no-op", prop.ForAll(
		func(inputs []logInput, victim int) bool {
			f := newPropertyFixture(t)

			ids := make([]string, 0, len(inputs))
			for _, in := range inputs {
				id, err := f.logs.CreateLog(ctx, in.LogType, in.PostType, in.Message, f.epIDs[0])
				if err != nil {
					return false
				}
				ids = append(ids, id)
			}

			if res := f.logs.DeleteLog(ctx, "no-such-log"); res != nil {
				return false
			}
			rows, err := f.logs.GetLogs(ctx, "u1")
			if err != nil || len(rows) != len(ids) {
				return false
			}

			if len(ids) == 0 {
				return true
			}

			deleted := ids[victim%len(ids)]
			if res := f.logs.DeleteLog(ctx, deleted); res != nil {
				return false
			}

			rows, err = f.logs.GetLogs(ctx, "u1")
			if err != nil || len(rows) != len(ids)-1 {
				return false
			}
			for _, r := range rows {
				if r.ID == deleted {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(5, genLogInput()),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}

func TestLogService_Scenarios(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)

	t.Run("success over http", func(t *testing.T) {
		logs, endpoints := newFixture(t, clock.NewFixed(now))
		ep, err := endpoints.CreateEndpoint(ctx, "Signup", "u1")
		require.NoError(t, err)

		id, err := logs.CreateLog(ctx, domain.LogTypeSuccess, domain.PostTypeHTTP, "42", ep)
		require.NoError(t, err)

		rows, err := logs.GetLogs(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, []domain.LogRow{{
			ID:         id,
			Type:       domain.LogTypeSuccess,
			PostType:   domain.PostTypeHTTP,
			Message:    domain.SuccessMessage{Value: "42"},
			CreatedAt:  now,
			EndpointID: ep,
			Endpoint:   "Signup",
		}}, rows)
	})

	t.Run("error from form", func(t *testing.T) {
		logs, endpoints := newFixture(t, clock.NewFixed(now))
		ep, err := endpoints.CreateEndpoint(ctx, "Contact", "u2")
		require.NoError(t, err)

		_, err = logs.CreateLog(ctx, domain.LogTypeError, domain.PostTypeForm, "bad input", ep)
		require.NoError(t, err)

		rows, err := logs.GetLogs(ctx, "u2")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.ErrorMessage{Error: "bad input"}, rows[0].Message)
	})

	t.Run("endpoint removed later", func(t *testing.T) {
		logs, endpoints := newFixture(t, clock.NewFixed(now))
		ep, err := endpoints.CreateEndpoint(ctx, "Legacy", "u1")
		require.NoError(t, err)

		id, err := logs.CreateLog(ctx, domain.LogTypeSuccess, domain.PostTypeHTTP, "7", ep)
		require.NoError(t, err)
		require.NoError(t, endpoints.DeleteEndpoint(ctx, ep))

		rows, err := logs.GetLogs(ctx, "u1")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, id, rows[0].ID)
		assert.Equal(t, "", rows[0].Endpoint)
	})

	t.Run("unknown endpoint", func(t *testing.T) {
		logs, _ := newFixture(t, clock.NewFixed(now))

		_, err := logs.CreateLog(ctx, domain.LogTypeSuccess, domain.PostTypeHTTP, "7", "ep-missing")
		assert.ErrorIs(t, err, service.ErrEndpointNotFound)
	})
}
