package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPotService_Brew(t *testing.T) {
	ctx := context.Background()
	bob := &models.Brewer{ID: 3, Username: "bob"}

	t.Run("publishes brewed event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		teas := services.NewMockTeaStore(ctrl)
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewPotService(pots, teas, writer)

		teas.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Tea{ID: 2, Name: "Sencha"}, nil)
		pots.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *models.Pot) error {
				assert.Nil(t, p.DrankAt)
				assert.False(t, p.BrewedAt.IsZero())
				p.ID = 9
				return nil
			})
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
				require.Len(t, msgs, 1)
				assert.Equal(t, "9", string(msgs[0].Key))
				var event services.PotEvent
				require.NoError(t, json.Unmarshal(msgs[0].Value, &event))
				assert.Equal(t, models.PotBrewed, event.Event)
				assert.Equal(t, int64(2), event.TeaID)
				assert.Equal(t, int64(3), event.BrewerID)
				assert.NotEmpty(t, event.EventID)
				return nil
			})

		p, err := svc.Brew(ctx, bob, models.PotInput{Tea: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(9), p.ID)
		assert.Equal(t, "Sencha", p.TeaName)
		assert.Equal(t, "bob", p.BrewerUsername)
		assert.Equal(t, models.PotBrewed, p.State())
	})

	t.Run("unknown tea", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		teas := services.NewMockTeaStore(ctrl)
		svc := services.NewPotService(pots, teas, nil)

		teas.EXPECT().GetByID(gomock.Any(), int64(42)).Return(nil, nil)

		_, err := svc.Brew(ctx, bob, models.PotInput{Tea: 42})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "tea")
	})

	t.Run("missing tea", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := services.NewPotService(services.NewMockPotStore(ctrl), services.NewMockTeaStore(ctrl), nil)

		_, err := svc.Brew(ctx, bob, models.PotInput{})
		var verr *services.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "This field is required.", verr.Fields.First("tea"))
	})

	t.Run("kafka failure does not fail the brew", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		teas := services.NewMockTeaStore(ctrl)
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewPotService(pots, teas, writer)

		teas.EXPECT().GetByID(gomock.Any(), int64(2)).Return(&models.Tea{ID: 2}, nil)
		pots.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		_, err := svc.Brew(ctx, bob, models.PotInput{Tea: 2})
		assert.NoError(t, err)
	})
}

func TestPotService_Drink(t *testing.T) {
	ctx := context.Background()
	brewed := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	t.Run("drinkable pot becomes drunk", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Pot{ID: 1, BrewedAt: brewed}, nil)
		pots.EXPECT().MarkDrunk(gomock.Any(), int64(1), gomock.Any()).Return(true, nil)

		p, changed, err := svc.Drink(ctx, 1)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.False(t, p.Drinkable())
	})

	t.Run("already drunk is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		drank := brewed.Add(time.Hour)
		pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Pot{ID: 1, BrewedAt: brewed, DrankAt: &drank}, nil)

		p, changed, err := svc.Drink(ctx, 1)
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, drank, *p.DrankAt)
	})

	t.Run("lost race is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		drank := brewed.Add(time.Minute)
		gomock.InOrder(
			pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Pot{ID: 1, BrewedAt: brewed}, nil),
			pots.EXPECT().MarkDrunk(gomock.Any(), int64(1), gomock.Any()).Return(false, nil),
			pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Pot{ID: 1, BrewedAt: brewed, DrankAt: &drank}, nil),
		)

		p, changed, err := svc.Drink(ctx, 1)
		require.NoError(t, err)
		assert.False(t, changed)
		require.NotNil(t, p.DrankAt)
		assert.Equal(t, drank, *p.DrankAt)
		assert.False(t, p.Drinkable())
	})

	t.Run("lost race reload fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		gomock.InOrder(
			pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.Pot{ID: 1, BrewedAt: brewed}, nil),
			pots.EXPECT().MarkDrunk(gomock.Any(), int64(1), gomock.Any()).Return(false, nil),
			pots.EXPECT().GetByID(gomock.Any(), int64(1)).Return(nil, errors.New("db down")),
		)

		_, changed, err := svc.Drink(ctx, 1)
		assert.EqualError(t, err, "db down")
		assert.False(t, changed)
	})

	t.Run("current pot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		writer := services.NewMockKafkaWriter(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), writer)

		pots.EXPECT().Current(gomock.Any()).Return(&models.Pot{ID: 4, BrewedAt: brewed}, nil)
		pots.EXPECT().MarkDrunk(gomock.Any(), int64(4), gomock.Any()).Return(true, nil)
		writer.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

		p, changed, err := svc.Drink(ctx, 0)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, int64(4), p.ID)
	})

	t.Run("no current pot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		pots.EXPECT().Current(gomock.Any()).Return(nil, nil)

		_, _, err := svc.Drink(ctx, 0)
		assert.ErrorIs(t, err, services.ErrNoDrinkablePot)
	})

	t.Run("unknown pot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pots := services.NewMockPotStore(ctrl)
		svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)

		pots.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, _, err := svc.Drink(ctx, 99)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestPotService_List(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	pots := services.NewMockPotStore(ctrl)
	svc := services.NewPotService(pots, services.NewMockTeaStore(ctrl), nil)
	filter := models.PotFilter{TeaID: 2}

	pots.EXPECT().Count(gomock.Any(), filter).Return(5, nil)
	pots.EXPECT().List(gomock.Any(), filter, 2, 4).Return([]models.Pot{{ID: 1}}, nil)

	res, err := svc.List(ctx, filter, pagination.Params{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 5, res.Total)
	assert.True(t, res.HasPrev())
	assert.False(t, res.HasNext())
}
