package store_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"roadworks-backend/internal/database/models"
	apperrors "roadworks-backend/internal/errors"
	"roadworks-backend/internal/mocks"
	"roadworks-backend/internal/notify"
	"roadworks-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// StoreTestSuite exercises the confirm-then-apply mutation protocol
// against mocked gateways.
type StoreTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRequestGW *mocks.MockRequestGatewayInterface
	mockUserGW    *mocks.MockUserGatewayInterface
	mockZonalGW   *mocks.MockZonalGatewayInterface
	mockRoleStore *mocks.MockRoleStoreInterface
	toasts        *notify.Channel
	store         *store.Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRequestGW = mocks.NewMockRequestGatewayInterface(s.ctrl)
	s.mockUserGW = mocks.NewMockUserGatewayInterface(s.ctrl)
	s.mockZonalGW = mocks.NewMockZonalGatewayInterface(s.ctrl)
	s.mockRoleStore = mocks.NewMockRoleStoreInterface(s.ctrl)
	s.toasts = notify.NewChannel(time.Minute, time.Minute)
	s.store = store.New(s.mockRequestGW, s.mockUserGW, s.mockZonalGW, s.mockRoleStore, s.toasts, nil)
}

func (s *StoreTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func seedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Eng. Ricardo Souza", Role: models.RoleManager, Zonal: models.ZoneNorth},
		{ID: "u2", Name: "Ana Oliveira", Role: models.RoleCollaborator, Zonal: models.ZoneNorth},
		{ID: "u4", Name: "Juliana Lima", Role: models.RoleManager, Zonal: models.ZoneSouth},
		{ID: "u7", Name: "Carlos Santos", Role: "role_123", Zonal: models.ZoneEast},
	}
}

func seedRequests() []models.RepairRequest {
	return []models.RepairRequest{
		{
			ID: "req_001", Protocol: "2024.123456", Status: models.StatusInProgress,
			TechnicianID: "u2", Zonal: models.ZoneNorth, CreatedAt: time.Now().Add(-time.Hour),
		},
	}
}

func seedRoles() map[string]string {
	roles := models.BuiltinRoles()
	roles["role_123"] = "Topógrafo"
	return roles
}

// load primes the store through its normal bootstrap path.
func (s *StoreTestSuite) load(requests []models.RepairRequest, users []models.User) {
	s.mockRequestGW.EXPECT().List(gomock.Any()).Return(requests, nil)
	s.mockUserGW.EXPECT().List(gomock.Any()).Return(users, nil)
	s.mockZonalGW.EXPECT().List(gomock.Any()).Return(models.DefaultZonals(), nil)
	s.mockRoleStore.EXPECT().Load().Return(seedRoles(), nil)
	require.NoError(s.T(), s.store.Load(context.Background()))
}

// lastToast drains the channel state down to the most recent message.
func (s *StoreTestSuite) lastToast() notify.Toast {
	active := s.toasts.Active()
	require.NotEmpty(s.T(), active)
	return active[len(active)-1]
}

// TestAddRequestCommitsAndPrepends covers scenario A: a successful create
// puts the new request first and queues a success toast. The caller tries
// to smuggle in a terminal status; creation always starts the lifecycle
// at open.
func (s *StoreTestSuite) TestAddRequestCommitsAndPrepends() {
	s.load(seedRequests(), seedUsers())

	s.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	created, err := s.store.AddRequest(context.Background(), models.RepairRequest{
		ID: "req_100", Protocol: "2024.555000", TechnicianID: "u2", Zonal: models.ZoneNorth,
		Status: models.StatusCompleted,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "req_100", created.ID)
	assert.Equal(s.T(), models.StatusOpen, created.Status, "new requests always start open")

	requests := s.store.Requests()
	require.Len(s.T(), requests, 2)
	assert.Equal(s.T(), "req_100", requests[0].ID, "newest request is first")
	assert.Equal(s.T(), models.StatusOpen, requests[0].Status)

	toast := s.lastToast()
	assert.Equal(s.T(), notify.SeveritySuccess, toast.Severity)
	assert.Contains(s.T(), toast.Message, "2024.555000")
}

func (s *StoreTestSuite) TestAddRequestGeneratesIDWhenAbsent() {
	s.load(nil, seedUsers())

	s.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	created, err := s.store.AddRequest(context.Background(), models.RepairRequest{
		Protocol: "2024.000001", TechnicianID: "u1", Zonal: models.ZoneNorth,
	})
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), created.ID)
}

func (s *StoreTestSuite) TestAddRequestRejectsDuplicateID() {
	s.load(seedRequests(), seedUsers())

	_, err := s.store.AddRequest(context.Background(), models.RepairRequest{
		ID: "req_001", Protocol: "2024.999999", TechnicianID: "u2", Zonal: models.ZoneNorth,
	})
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsAlreadyExists(err))
	assert.Len(s.T(), s.store.Requests(), 1, "collection unchanged")
	assert.Equal(s.T(), notify.SeverityError, s.lastToast().Severity)
}

func (s *StoreTestSuite) TestAddRequestRejectsUnknownTechnician() {
	s.load(nil, seedUsers())

	_, err := s.store.AddRequest(context.Background(), models.RepairRequest{
		Protocol: "2024.777777", TechnicianID: "ghost", Zonal: models.ZoneWest,
	})
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))
	assert.Empty(s.T(), s.store.Requests())
}

// TestUpdateRequestGatewayFailureLeavesStateUntouched covers scenario C:
// a failed remote write leaves the collection byte-for-byte unchanged and
// queues an error toast carrying the failure message.
func (s *StoreTestSuite) TestUpdateRequestGatewayFailureLeavesStateUntouched() {
	s.load(seedRequests(), seedUsers())
	before := s.store.Requests()

	cause := errors.New("connection reset by peer")
	s.mockRequestGW.EXPECT().Update(gomock.Any(), gomock.Any()).
		Return(apperrors.NewPersistenceError("update repair request", cause))

	updated := before[0]
	updated.Status = models.StatusCompleted
	err := s.store.UpdateRequest(context.Background(), updated)
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsPersistence(err))

	assert.Equal(s.T(), before, s.store.Requests(), "no partial mutation is ever visible")
	toast := s.lastToast()
	assert.Equal(s.T(), notify.SeverityError, toast.Severity)
	assert.Contains(s.T(), toast.Message, "connection reset by peer")
}

func (s *StoreTestSuite) TestUpdateRequestReplacesByID() {
	s.load(seedRequests(), seedUsers())

	s.mockRequestGW.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	after := "data:image/png;base64,xyz"
	updated := seedRequests()[0]
	updated.Status = models.StatusCompleted
	updated.PhotoAfter = &after
	require.NoError(s.T(), s.store.UpdateRequest(context.Background(), updated))

	requests := s.store.Requests()
	require.Len(s.T(), requests, 1)
	assert.Equal(s.T(), models.StatusCompleted, requests[0].Status)
	require.NotNil(s.T(), requests[0].PhotoAfter)
}

func (s *StoreTestSuite) TestUpdateRequestRejectsUnknownID() {
	s.load(seedRequests(), seedUsers())

	ghost := seedRequests()[0]
	ghost.ID = "req_404"
	err := s.store.UpdateRequest(context.Background(), ghost)
	require.Error(s.T(), err)
	assert.True(s.T(), errors.Is(err, apperrors.ErrRequestNotFound))
}

func (s *StoreTestSuite) TestDeleteRequestRemovesByID() {
	s.load(seedRequests(), seedUsers())

	s.mockRequestGW.EXPECT().Delete(gomock.Any(), "req_001").Return(nil)
	require.NoError(s.T(), s.store.DeleteRequest(context.Background(), "req_001"))
	assert.Empty(s.T(), s.store.Requests())
}

// TestAddUserRejectsSecondManagerForZone covers scenario B: the manager
// uniqueness rule fires before any gateway call and the error names the
// existing manager.
func (s *StoreTestSuite) TestAddUserRejectsSecondManagerForZone() {
	s.load(nil, seedUsers())
	before := s.store.Users()

	_, err := s.store.AddUser(context.Background(), models.User{
		ID: "u9", Name: "Marcos Pereira", Role: models.RoleManager, Zonal: models.ZoneSouth,
	})
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))

	toast := s.lastToast()
	assert.Equal(s.T(), notify.SeverityError, toast.Severity)
	assert.Contains(s.T(), toast.Message, "Juliana Lima", "toast names the existing manager")
	assert.Equal(s.T(), before, s.store.Users(), "user collection unchanged")
}

func (s *StoreTestSuite) TestAddUserCommits() {
	s.load(nil, seedUsers())

	s.mockUserGW.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	created, err := s.store.AddUser(context.Background(), models.User{
		Name: "Marcos Pereira", Role: models.RoleManager, Zonal: models.ZoneWest,
	})
	require.NoError(s.T(), err)
	assert.NotEmpty(s.T(), created.ID)
	assert.Len(s.T(), s.store.Users(), len(seedUsers())+1)
	assert.Equal(s.T(), notify.SeveritySuccess, s.lastToast().Severity)
}

func (s *StoreTestSuite) TestUpdateUserKeepingOwnManagerRoleIsAllowed() {
	s.load(nil, seedUsers())

	s.mockUserGW.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	// u4 is already the South manager; editing her record must not trip
	// the uniqueness check against herself.
	err := s.store.UpdateUser(context.Background(), models.User{
		ID: "u4", Name: "Juliana Lima Costa", Role: models.RoleManager, Zonal: models.ZoneSouth,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Juliana Lima Costa", s.store.UserName("u4"))
}

func (s *StoreTestSuite) TestDeleteUserLeavesDanglingReferences() {
	s.load(seedRequests(), seedUsers())

	s.mockUserGW.EXPECT().Delete(gomock.Any(), "u2").Return(nil)
	require.NoError(s.T(), s.store.DeleteUser(context.Background(), "u2"))

	// The request still points at u2; the read path degrades to the
	// placeholder instead of failing.
	assert.Equal(s.T(), "u2", s.store.Requests()[0].TechnicianID)
	assert.Equal(s.T(), store.UnresolvedName, s.store.UserName("u2"))
}

func (s *StoreTestSuite) TestUpdateZonalReplacesMetadata() {
	s.load(nil, nil)

	s.mockZonalGW.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)

	manager := "u1"
	err := s.store.UpdateZonal(context.Background(), models.ZonalMetadata{
		ID: models.ZoneNorth, Name: "Zonal Norte - Sede", ManagerID: &manager,
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "Zonal Norte - Sede", s.store.ZonalName(models.ZoneNorth))
}

func (s *StoreTestSuite) TestUpdateZonalRejectsUnknownZone() {
	s.load(nil, nil)

	err := s.store.UpdateZonal(context.Background(), models.ZonalMetadata{ID: "center", Name: "Zonal Centro"})
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))
}

func (s *StoreTestSuite) TestZonalNameFallsBackToRawID() {
	s.load(nil, nil)
	assert.Equal(s.T(), "Zonal Norte", s.store.ZonalName(models.ZoneNorth))
	assert.Equal(s.T(), "swamp", s.store.ZonalName(models.Zone("swamp")))
}

func (s *StoreTestSuite) TestRoleLabelFallsBackToRawKey() {
	s.load(nil, nil)
	assert.Equal(s.T(), "Gerente", s.store.RoleLabel(models.RoleManager))
	assert.Equal(s.T(), "role_999", s.store.RoleLabel("role_999"))
}

func (s *StoreTestSuite) TestAddRoleGeneratesUniqueKey() {
	s.load(nil, nil)

	s.mockRoleStore.EXPECT().Save(gomock.Any(), "Fiscal de Obras").Return(nil)

	key, err := s.store.AddRole("Fiscal de Obras")
	require.NoError(s.T(), err)
	assert.Contains(s.T(), key, "role_")
	assert.Equal(s.T(), "Fiscal de Obras", s.store.RoleLabel(key))
}

func (s *StoreTestSuite) TestRemoveRoleRejectsBuiltins() {
	s.load(nil, nil)

	for _, key := range []string{models.RoleManager, models.RoleCollaborator, models.RoleIntern} {
		err := s.store.RemoveRole(key)
		require.Error(s.T(), err)
		assert.True(s.T(), apperrors.IsValidation(err))
	}
	assert.Len(s.T(), s.store.Roles(), len(seedRoles()))
}

// TestRemoveRoleRejectsRoleInUse covers scenario D: role_123 is held by
// u7, so removal is rejected with the dictionary unchanged.
func (s *StoreTestSuite) TestRemoveRoleRejectsRoleInUse() {
	s.load(nil, seedUsers())
	before := s.store.Roles()

	err := s.store.RemoveRole("role_123")
	require.Error(s.T(), err)
	assert.True(s.T(), apperrors.IsValidation(err))
	assert.Equal(s.T(), before, s.store.Roles())

	toast := s.lastToast()
	assert.Equal(s.T(), notify.SeverityError, toast.Severity)
	assert.Contains(s.T(), toast.Message, "Carlos Santos")
}

func (s *StoreTestSuite) TestRemoveRoleCommitsWhenUnreferenced() {
	s.load(nil, nil)

	s.mockRoleStore.EXPECT().Delete("role_123").Return(nil)
	require.NoError(s.T(), s.store.RemoveRole("role_123"))
	_, ok := s.store.Roles()["role_123"]
	assert.False(s.T(), ok)
}

func (s *StoreTestSuite) TestEveryMutationOutcomeEmitsExactlyOneToast() {
	s.load(seedRequests(), seedUsers())

	s.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	_, err := s.store.AddRequest(context.Background(), models.RepairRequest{
		ID: "req_200", Protocol: "2024.200200", TechnicianID: "u1", Zonal: models.ZoneNorth,
	})
	require.NoError(s.T(), err)
	assert.Len(s.T(), s.toasts.Active(), 1)

	_, err = s.store.AddRequest(context.Background(), models.RepairRequest{
		ID: "req_200", Protocol: "2024.200200", TechnicianID: "u1", Zonal: models.ZoneNorth,
	})
	require.Error(s.T(), err)
	assert.Len(s.T(), s.toasts.Active(), 2)
}

// TestConcurrentReadersNeverSeeHalfAppliedMutations is the atomicity
// property: while requests are added concurrently, every snapshot a
// reader observes is internally consistent (no duplicate or missing ids
// within one snapshot).
func (s *StoreTestSuite) TestConcurrentReadersNeverSeeHalfAppliedMutations() {
	s.load(nil, seedUsers())

	s.mockRequestGW.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	const writers = 8
	var wg sync.WaitGroup
	stop := make(chan struct{})

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				snapshot := s.store.Requests()
				seen := make(map[string]bool, len(snapshot))
				for _, req := range snapshot {
					assert.False(s.T(), seen[req.ID], "duplicate id within one snapshot")
					seen[req.ID] = true
				}
			}
		}()
	}

	var writerWG sync.WaitGroup
	for w := 0; w < writers; w++ {
		writerWG.Add(1)
		go func(n int) {
			defer writerWG.Done()
			_, err := s.store.AddRequest(context.Background(), models.RepairRequest{
				ID:           fmt.Sprintf("req_c%d", n),
				Protocol:     fmt.Sprintf("2024.%06d", n),
				TechnicianID: "u1",
				Zonal:        models.ZoneNorth,
			})
			assert.NoError(s.T(), err)
		}(w)
	}
	writerWG.Wait()
	close(stop)
	wg.Wait()

	assert.Len(s.T(), s.store.Requests(), writers)
}

func (s *StoreTestSuite) TestLoadSeedsZonalsAndRolesOnFirstRun() {
	s.mockRequestGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	s.mockUserGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	s.mockZonalGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	s.mockZonalGW.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(4)
	s.mockRoleStore.EXPECT().Load().Return(map[string]string{}, nil)
	s.mockRoleStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(s.T(), s.store.Load(context.Background()))
	assert.Len(s.T(), s.store.Zonals(), 4)
	assert.Equal(s.T(), "Zonal Leste", s.store.ZonalName(models.ZoneEast))
	assert.Len(s.T(), s.store.Roles(), 3)
}

// A dictionary implementation may report "no rows" as a nil map; seeding
// must still work.
func (s *StoreTestSuite) TestLoadSeedsRolesWhenDictionaryReturnsNilMap() {
	s.mockRequestGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	s.mockUserGW.EXPECT().List(gomock.Any()).Return(nil, nil)
	s.mockZonalGW.EXPECT().List(gomock.Any()).Return(models.DefaultZonals(), nil)
	s.mockRoleStore.EXPECT().Load().Return(nil, nil)
	s.mockRoleStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(3)

	require.NoError(s.T(), s.store.Load(context.Background()))
	assert.Len(s.T(), s.store.Roles(), 3)
	assert.Equal(s.T(), "Gerente", s.store.RoleLabel(models.RoleManager))
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
