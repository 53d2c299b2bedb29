package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/morada/morada/internal/app/auth"
	"github.com/morada/morada/internal/app/models"
	"github.com/morada/morada/internal/pkg/apperrors"
)

// In-memory repositories backing the service tests.

type memUserRepo struct {
	users map[int64]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*models.User)}
}

func (r *memUserRepo) add(user models.User) *models.User {
	u := user
	r.users[u.ID] = &u
	return &u
}

func (r *memUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	user.ID = int64(len(r.users) + 1)
	r.users[user.ID] = user
	return user.ID, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) UpdateProfile(ctx context.Context, id int64, firstName, lastName, phone string) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.FirstName, u.LastName, u.Phone = firstName, lastName, phone
	return nil
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, id int64) error {
	return nil
}

type memMembershipRepo struct {
	memberships map[int64]*models.Membership
	nextID      int64
}

func newMemMembershipRepo() *memMembershipRepo {
	return &memMembershipRepo{memberships: make(map[int64]*models.Membership)}
}

func (r *memMembershipRepo) addActive(userID, condominiumID int64) {
	r.nextID++
	r.memberships[r.nextID] = &models.Membership{
		ID:            r.nextID,
		UserID:        userID,
		CondominiumID: condominiumID,
		Status:        models.MembershipActive,
	}
}

func (r *memMembershipRepo) Create(ctx context.Context, userID, condominiumID int64) (int64, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.CondominiumID == condominiumID {
			return 0, apperrors.ErrMembershipAlreadyExists
		}
	}
	r.nextID++
	r.memberships[r.nextID] = &models.Membership{
		ID:            r.nextID,
		UserID:        userID,
		CondominiumID: condominiumID,
		Status:        models.MembershipPending,
	}
	return r.nextID, nil
}

func (r *memMembershipRepo) GetByID(ctx context.Context, id int64) (*models.Membership, error) {
	m, ok := r.memberships[id]
	if !ok {
		return nil, apperrors.ErrMembershipNotFound
	}
	return m, nil
}

func (r *memMembershipRepo) GetByUserAndCondominium(ctx context.Context, userID, condominiumID int64) (*models.Membership, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.CondominiumID == condominiumID {
			return m, nil
		}
	}
	return nil, apperrors.ErrMembershipNotFound
}

func (r *memMembershipRepo) UpdateStatus(ctx context.Context, id int64, status models.MembershipStatus) error {
	m, ok := r.memberships[id]
	if !ok {
		return apperrors.ErrMembershipNotFound
	}
	m.Status = status
	return nil
}

func (r *memMembershipRepo) GetActiveByUserID(ctx context.Context, userID int64) ([]*models.Membership, error) {
	var out []*models.Membership
	for _, m := range r.memberships {
		if m.UserID == userID && m.Status == models.MembershipActive {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) GetPendingByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Membership, error) {
	var out []*models.Membership
	for _, m := range r.memberships {
		if m.CondominiumID == condominiumID && m.Status == models.MembershipPending {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMembershipRepo) IsActiveMember(ctx context.Context, userID, condominiumID int64) (bool, error) {
	for _, m := range r.memberships {
		if m.UserID == userID && m.CondominiumID == condominiumID && m.Status == models.MembershipActive {
			return true, nil
		}
	}
	return false, nil
}

type memCondominiumRepo struct {
	condos map[int64]*models.Condominium
	areas  map[int64]*models.CommonArea
}

func newMemCondominiumRepo() *memCondominiumRepo {
	return &memCondominiumRepo{
		condos: make(map[int64]*models.Condominium),
		areas:  make(map[int64]*models.CommonArea),
	}
}

func (r *memCondominiumRepo) addCondo(condo models.Condominium) {
	c := condo
	r.condos[c.ID] = &c
}

func (r *memCondominiumRepo) addArea(area models.CommonArea) {
	a := area
	r.areas[a.ID] = &a
}

func (r *memCondominiumRepo) CreateWithAreas(ctx context.Context, condo *models.Condominium, areas []models.CommonArea) (int64, error) {
	condo.ID = int64(len(r.condos) + 1)
	r.condos[condo.ID] = condo
	for i := range areas {
		areas[i].ID = int64(len(r.areas) + 1)
		areas[i].CondominiumID = condo.ID
		a := areas[i]
		r.areas[a.ID] = &a
	}
	return condo.ID, nil
}

func (r *memCondominiumRepo) GetByID(ctx context.Context, id int64) (*models.Condominium, error) {
	c, ok := r.condos[id]
	if !ok {
		return nil, apperrors.ErrCondominiumNotFound
	}
	return c, nil
}

func (r *memCondominiumRepo) GetAll(ctx context.Context, offset uint64, limit int) ([]models.Condominium, int64, error) {
	out := make([]models.Condominium, 0, len(r.condos))
	for _, c := range r.condos {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *memCondominiumRepo) GetCommonAreas(ctx context.Context, condominiumID int64) ([]models.CommonArea, error) {
	var out []models.CommonArea
	for _, a := range r.areas {
		if a.CondominiumID == condominiumID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *memCondominiumRepo) GetCommonAreaByID(ctx context.Context, id int64) (*models.CommonArea, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, apperrors.ErrCommonAreaNotFound
	}
	return a, nil
}

type memReservationRepo struct {
	reservations map[int64]*models.Reservation
	nextID       int64
}

func newMemReservationRepo() *memReservationRepo {
	return &memReservationRepo{reservations: make(map[int64]*models.Reservation)}
}

func (r *memReservationRepo) CreateChecked(ctx context.Context, res *models.Reservation) (int64, error) {
	for _, existing := range r.reservations {
		if existing.CommonAreaID == res.CommonAreaID &&
			existing.Status.Blocking() &&
			existing.Overlaps(res.StartTime, res.EndTime) {
			return 0, apperrors.ErrReservationConflict
		}
	}
	r.nextID++
	stored := *res
	stored.ID = r.nextID
	stored.Status = models.ReservationPending
	r.reservations[stored.ID] = &stored
	return stored.ID, nil
}

func (r *memReservationRepo) GetByID(ctx context.Context, id int64) (*models.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, apperrors.ErrReservationNotFound
	}
	return res, nil
}

func (r *memReservationRepo) UpdateStatus(ctx context.Context, id int64, status models.ReservationStatus) error {
	res, ok := r.reservations[id]
	if !ok {
		return apperrors.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

func (r *memReservationRepo) GetBlockingForAreaOnDay(ctx context.Context, commonAreaID int64, day time.Time) ([]*models.Reservation, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var out []*models.Reservation
	for _, res := range r.reservations {
		if res.CommonAreaID == commonAreaID && res.Status.Blocking() && res.Overlaps(dayStart, dayEnd) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *memReservationRepo) GetByCondominiumID(ctx context.Context, condominiumID int64, offset uint64, limit int) ([]*models.Reservation, int64, error) {
	var out []*models.Reservation
	for _, res := range r.reservations {
		if res.CondominiumID == condominiumID {
			out = append(out, res)
		}
	}
	return out, int64(len(out)), nil
}

type attendanceKey struct {
	assemblyID int64
	userID     int64
}

type memAssemblyRepo struct {
	assemblies  map[int64]*models.Assembly
	attendances map[attendanceKey]*models.Attendance
	nextID      int64
}

func newMemAssemblyRepo() *memAssemblyRepo {
	return &memAssemblyRepo{
		assemblies:  make(map[int64]*models.Assembly),
		attendances: make(map[attendanceKey]*models.Attendance),
	}
}

func (r *memAssemblyRepo) addAssembly(assembly models.Assembly) {
	a := assembly
	r.assemblies[a.ID] = &a
}

func (r *memAssemblyRepo) Create(ctx context.Context, assembly *models.Assembly) (int64, error) {
	r.nextID++
	assembly.ID = r.nextID
	r.assemblies[assembly.ID] = assembly
	return assembly.ID, nil
}

func (r *memAssemblyRepo) GetByID(ctx context.Context, id int64) (*models.Assembly, error) {
	a, ok := r.assemblies[id]
	if !ok {
		return nil, apperrors.ErrAssemblyNotFound
	}
	return a, nil
}

func (r *memAssemblyRepo) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Assembly, error) {
	var out []*models.Assembly
	for _, a := range r.assemblies {
		if a.CondominiumID == condominiumID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memAssemblyRepo) ConfirmAttendance(ctx context.Context, assemblyID, userID int64) (bool, error) {
	key := attendanceKey{assemblyID: assemblyID, userID: userID}
	if _, ok := r.attendances[key]; ok {
		return true, nil
	}
	r.attendances[key] = &models.Attendance{
		ID:          int64(len(r.attendances) + 1),
		AssemblyID:  assemblyID,
		UserID:      userID,
		ConfirmedAt: time.Now().UTC(),
	}
	return false, nil
}

func (r *memAssemblyRepo) GetAttendance(ctx context.Context, assemblyID int64) ([]*models.Attendance, error) {
	var out []*models.Attendance
	for _, att := range r.attendances {
		if att.AssemblyID == assemblyID {
			out = append(out, att)
		}
	}
	return out, nil
}

type memGalleryRepo struct {
	galleries map[int64]*models.Gallery
	photos    map[int64]*models.Photo
	nextPhoto int64
}

func newMemGalleryRepo() *memGalleryRepo {
	return &memGalleryRepo{
		galleries: make(map[int64]*models.Gallery),
		photos:    make(map[int64]*models.Photo),
	}
}

func (r *memGalleryRepo) addGallery(gallery models.Gallery) {
	g := gallery
	r.galleries[g.ID] = &g
}

func (r *memGalleryRepo) Create(ctx context.Context, gallery *models.Gallery) (int64, error) {
	gallery.ID = int64(len(r.galleries) + 1)
	r.galleries[gallery.ID] = gallery
	return gallery.ID, nil
}

func (r *memGalleryRepo) GetByID(ctx context.Context, id int64) (*models.Gallery, error) {
	g, ok := r.galleries[id]
	if !ok {
		return nil, apperrors.ErrGalleryNotFound
	}
	return g, nil
}

func (r *memGalleryRepo) GetByCondominiumID(ctx context.Context, condominiumID int64) ([]*models.Gallery, error) {
	var out []*models.Gallery
	for _, g := range r.galleries {
		if g.CondominiumID == condominiumID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *memGalleryRepo) SetCoverPhotoURL(ctx context.Context, galleryID int64, url *string) error {
	g, ok := r.galleries[galleryID]
	if !ok {
		return apperrors.ErrGalleryNotFound
	}
	g.CoverPhotoURL = url
	return nil
}

func (r *memGalleryRepo) CreatePhoto(ctx context.Context, photo *models.Photo) (int64, error) {
	r.nextPhoto++
	photo.ID = r.nextPhoto
	photo.Status = models.PhotoPending
	if photo.CreatedAt.IsZero() {
		photo.CreatedAt = time.Now().UTC()
	}
	r.photos[photo.ID] = photo
	return photo.ID, nil
}

func (r *memGalleryRepo) GetPhotoByID(ctx context.Context, id int64) (*models.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, apperrors.ErrPhotoNotFound
	}
	return p, nil
}

func (r *memGalleryRepo) GetPhotosByGalleryID(ctx context.Context, galleryID int64, status *models.PhotoStatus) ([]*models.Photo, error) {
	var out []*models.Photo
	for _, p := range r.photos {
		if p.GalleryID != galleryID {
			continue
		}
		if status != nil && p.Status != *status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memGalleryRepo) UpdatePhotoStatus(ctx context.Context, id int64, status models.PhotoStatus) error {
	p, ok := r.photos[id]
	if !ok {
		return apperrors.ErrPhotoNotFound
	}
	p.Status = status
	return nil
}

func (r *memGalleryRepo) GetLatestApprovedPhoto(ctx context.Context, galleryID int64) (*models.Photo, error) {
	var latest *models.Photo
	for _, p := range r.photos {
		if p.GalleryID != galleryID || p.Status != models.PhotoApproved {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) ||
			(p.CreatedAt.Equal(latest.CreatedAt) && p.ID > latest.ID) {
			latest = p
		}
	}
	return latest, nil
}

// newTestAuthz builds an authorization service over in-memory users and
// memberships, pre-seeded with an administrator (id 1) and a resident
// (id 2), both active members of condominium 1.
func newTestAuthz() (*auth.AuthorizationService, *memUserRepo, *memMembershipRepo) {
	users := newMemUserRepo()
	users.add(models.User{ID: 1, Email: "admin@example.com", Role: models.RoleAdministrator, IsActive: true})
	users.add(models.User{ID: 2, Email: "resident@example.com", Role: models.RoleResident, IsActive: true})

	memberships := newMemMembershipRepo()
	memberships.addActive(1, 1)
	memberships.addActive(2, 1)

	return auth.NewAuthorizationService(users, memberships), users, memberships
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
