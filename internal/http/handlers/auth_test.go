package handlers_test

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/NuryND000/backend-gr-coin-v3/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestRegisterMissingFieldRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{
		`{"username":"budi"}`,
		`{"username":"budi","alamat":"Jl. Melati","wilayah":"Sleman","tlp":"0811","ewallet":"ovo"}`,
		`{}`,
	} {
		w := doJSON(r, http.MethodPost, "/register", body, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "All fields are required")
	}
}

func TestRegisterStoresHashAndHidesIt(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("budi", "Jl. Melati", "Sleman", "0811", "ovo", sqlmock.AnyArg(), "user").
		WillReturnResult(sqlmock.NewResult(1, 1))

	w := doJSON(r, http.MethodPost, "/register",
		`{"username":"budi","alamat":"Jl. Melati","wilayah":"Sleman","tlp":"0811","ewallet":"ovo","password":"rahasia123"}`, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"budi"`)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
	assert.NotContains(t, w.Body.String(), "rahasia123")
	assert.NotContains(t, w.Body.String(), `"password"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownPhone(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE tlp").WithArgs("0999").
		WillReturnError(sql.ErrNoRows)

	w := doJSON(r, http.MethodPost, "/login", `{"tlp":"0999","password":"apapun"}`, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginWrongPasswordSameError(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE tlp").WithArgs("0811").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(7, "budi", "Jl. Melati", "Sleman", "0811", "ovo", mustHash(t, "benar"), "user"))

	w := doJSON(r, http.MethodPost, "/login", `{"tlp":"0811","password":"salah"}`, "")

	// Pesan harus sama persis dengan kasus nomor tak dikenal.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials")
}

func TestLoginIssuesDecodableToken(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE tlp").WithArgs("0811").
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(7, "budi", "Jl. Melati", "Sleman", "0811", "ovo", mustHash(t, "benar"), "admin"))

	w := doJSON(r, http.MethodPost, "/login", `{"tlp":"0811","password":"benar"}`, "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	claims, err := utils.ParseToken(resp.Token, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	assert.NotContains(t, string(resp.User), "password")
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(7, "budi", "Jl. Melati", "Sleman", "0811", "ovo", mustHash(t, "lama"), "user"))

	w := doJSON(r, http.MethodPost, "/changepassword",
		`{"oldPassword":"salah","newPassword":"baru123"}`, tokenFor(t, 7, "user"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Old password is incorrect")
}

func TestChangePasswordIdentityGone(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(7)).
		WillReturnError(sql.ErrNoRows)

	w := doJSON(r, http.MethodPost, "/changepassword",
		`{"oldPassword":"lama","newPassword":"baru123"}`, tokenFor(t, 7, "user"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestChangePasswordSuccess(t *testing.T) {
	r, mock := newTestRouter(t)

	mock.ExpectQuery("FROM users WHERE id").WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow(7, "budi", "Jl. Melati", "Sleman", "0811", "ovo", mustHash(t, "lama"), "user"))
	mock.ExpectExec("UPDATE users SET password").
		WithArgs(sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPost, "/changepassword",
		`{"oldPassword":"lama","newPassword":"baru123"}`, tokenFor(t, 7, "user"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password changed successfully")
	assert.NoError(t, mock.ExpectationsWereMet())
}
