package viewstate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shopeasy/internal/domain"
	"shopeasy/internal/repository/mocks"
	"shopeasy/internal/testutil"
)

type ProductsTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	catalog   *mocks.MockCatalogRepository
	favorites *mocks.MockFavoritesRepository
	products  *Products
	ctx       context.Context
	cancel    context.CancelFunc
}

func (s *ProductsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.catalog = mocks.NewMockCatalogRepository(s.ctrl)
	s.favorites = mocks.NewMockFavoritesRepository(s.ctrl)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.products = NewProducts(s.ctx, s.catalog, s.favorites, testLogger())
	s.products.now = func() time.Time { return fixedNow }
}

func (s *ProductsTestSuite) TearDownTest() {
	s.products.Close()
	s.cancel()
	s.ctrl.Finish()
}

func TestProductsTestSuite(t *testing.T) {
	suite.Run(t, new(ProductsTestSuite))
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Backpack", Price: 109.95, Category: testutil.Ptr("bags"), Image: "https://img/1.jpg"},
		{ID: 2, Title: "Shirt", Price: 22.3, Image: "https://img/2.jpg"},
	}
}

func (s *ProductsTestSuite) TestInitialStateIdle() {
	st := s.products.State()
	s.False(st.Loading)
	s.Empty(st.Products)
	s.Empty(st.Error)
}

func (s *ProductsTestSuite) TestLoad_Success() {
	s.catalog.EXPECT().GetProducts(gomock.Any()).Return(sampleProducts(), nil)

	s.products.Dispatch(LoadProducts{})
	s.products.Wait()

	st := s.products.State()
	s.False(st.Loading)
	s.Empty(st.Error)
	s.Equal(sampleProducts(), st.Products)
}

func (s *ProductsTestSuite) TestLoad_LoadingWhileFetching() {
	open, wait := gate()
	s.catalog.EXPECT().GetProducts(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Product, error) {
		if err := wait(ctx); err != nil {
			return nil, err
		}
		return sampleProducts(), nil
	})

	s.products.Dispatch(LoadProducts{})
	s.Eventually(func() bool { return s.products.State().Loading }, waitTimeout, tick)

	close(open)
	s.products.Wait()
	s.False(s.products.State().Loading)
}

func (s *ProductsTestSuite) TestLoad_FailureKeepsPreviousProducts() {
	transportErr := fmt.Errorf("get /products: %w: connection refused", domain.ErrTransport)
	gomock.InOrder(
		s.catalog.EXPECT().GetProducts(gomock.Any()).Return(sampleProducts(), nil),
		s.catalog.EXPECT().GetProducts(gomock.Any()).Return(nil, transportErr),
	)

	s.products.Dispatch(LoadProducts{})
	s.products.Wait()
	s.products.Dispatch(LoadProducts{})
	s.products.Wait()

	st := s.products.State()
	s.False(st.Loading)
	s.Equal(transportErr.Error(), st.Error)
	s.Equal(sampleProducts(), st.Products)
}

func (s *ProductsTestSuite) TestLoad_RetryClearsError() {
	gomock.InOrder(
		s.catalog.EXPECT().GetProducts(gomock.Any()).Return(nil, &domain.StatusError{Code: 503}),
		s.catalog.EXPECT().GetProducts(gomock.Any()).Return(sampleProducts(), nil),
	)

	s.products.Dispatch(LoadProducts{})
	s.products.Wait()
	s.Equal("remote status 503", s.products.State().Error)

	s.products.Refresh()
	s.products.Wait()
	st := s.products.State()
	s.Empty(st.Error)
	s.Len(st.Products, 2)
}

func (s *ProductsTestSuite) TestLoad_EmptyErrorMessage() {
	s.catalog.EXPECT().GetProducts(gomock.Any()).Return(nil, errors.New(""))

	s.products.Dispatch(LoadProducts{})
	s.products.Wait()

	s.Equal("Unknown error", s.products.State().Error)
}

func (s *ProductsTestSuite) TestAddToFavorites_NotifiesListener() {
	product := sampleProducts()[0]
	s.favorites.EXPECT().SaveFavorite(gomock.Any(), domain.NewFavorite(product, fixedNow)).Return(nil)

	notes := s.products.Notifications(s.ctx)
	s.products.Dispatch(AddToFavorites{Product: product})

	n := receive(&s.Suite, notes)
	s.Equal("Added to favorites", n.Message)
	s.NotEqual(uuid.Nil, n.ID)
	s.True(n.At.Equal(fixedNow))
	s.products.Wait()
}

func (s *ProductsTestSuite) TestAddToFavorites_NoListenerDropsNotification() {
	s.favorites.EXPECT().SaveFavorite(gomock.Any(), gomock.Any()).Return(nil)

	s.products.Dispatch(AddToFavorites{Product: sampleProducts()[1]})
	s.products.Wait()

	expectNoNotification(&s.Suite, s.products.Notifications(s.ctx))
}

func (s *ProductsTestSuite) TestAddToFavorites_SaveFailure() {
	fault := domain.StorageFault("upsert favorite 1", errors.New("disk full"))
	s.favorites.EXPECT().SaveFavorite(gomock.Any(), gomock.Any()).Return(fault)

	notes := s.products.Notifications(s.ctx)
	s.products.Dispatch(AddToFavorites{Product: sampleProducts()[0]})

	s.Equal("Failed to add to favorites", receive(&s.Suite, notes).Message)
	s.products.Wait()
	s.Empty(s.products.State().Error)
}

func (s *ProductsTestSuite) TestClose_CancelsInFlightLoad() {
	started := make(chan struct{})
	s.catalog.EXPECT().GetProducts(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]domain.Product, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	s.products.Dispatch(LoadProducts{})
	<-started
	s.products.Close()

	st := s.products.State()
	s.False(st.Loading)
	s.Equal(context.Canceled.Error(), st.Error)

	s.products.Dispatch(LoadProducts{})
	s.products.Wait()
}
