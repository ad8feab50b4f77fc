package handlers_test

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCreateComplaintEmptyText(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{
		`{"complaint":""}`,
		`{"complaint":"   "}`,
		`{}`,
	} {
		// Tanpa token: route ini memang terbuka.
		w := doJSON(r, http.MethodPost, "/complaint/12", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Complaint is required", "body: %s", body)
	}
}

func TestCreateComplaintWithoutAuth(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO complaints").
		WithArgs(int64(12), "koin tidak masuk", "pending", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	w := doJSON(r, http.MethodPost, "/complaint/12", `{"complaint":"koin tidak masuk"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"userId":12`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateComplaintInvalidUserID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/complaint/abc", `{"complaint":"halo"}`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid user ID")
}

func TestUpdateComplaintRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodPut, "/complaint/3", `{"status":"selesai"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateComplaintStatus(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("UPDATE complaints SET status").
		WithArgs("selesai", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM complaints WHERE id").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "complaint", "status", "date"}).
			AddRow(3, 12, "koin tidak masuk", "selesai", sqlmockTime()))

	w := doJSON(r, http.MethodPut, "/complaint/3", `{"status":"selesai"}`, tokenFor(t, 12, "user"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"selesai"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAllComplaintsRequiresAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/complaint/all", "", tokenFor(t, 12, "user"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden: Admin only")
}
