package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"car-rental-backend/internal/errs"
	"car-rental-backend/internal/handlers"
	"car-rental-backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	handler_mocks "car-rental-backend/internal/handlers/mocks"
)

func carRouter(svc handlers.CarService) *gin.Engine {
	r := gin.New()
	r.GET("/api/cars", handlers.CarList(svc))
	r.PUT("/api/cars/:id", handlers.CarUpdate(svc))
	r.DELETE("/api/cars/:id", handlers.CarDelete(svc))
	return r
}

func TestCarList(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockCarService(c)
	svc.EXPECT().List(gomock.Any(), true).Return([]models.Car{{ID: 1, Name: "Dacia Logan", Availability: true}}, nil)
	svc.EXPECT().List(gomock.Any(), false).Return([]models.Car{}, nil)

	r := carRouter(svc)
	w := doRequest(r, http.MethodGet, "/api/cars?available=true", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"name":"Dacia Logan"`)

	w = doRequest(r, http.MethodGet, "/api/cars", "", "")
	require.JSONEq(t, `{"success":true,"cars":[]}`, w.Body.String())
}

func TestCarUpdate_AvailabilityOnly(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockCarService(c)

	available := false
	svc.EXPECT().Update(gomock.Any(), uint(3), models.CarPatch{Availability: &available}).
		Return(models.Car{ID: 3, Availability: false}, nil)

	w := doRequest(carRouter(svc), http.MethodPut, "/api/cars/3", `{"availability":false}`, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"availability":false`)
}

func TestCarDelete_InUse(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := handler_mocks.NewMockCarService(c)
	svc.EXPECT().Delete(gomock.Any(), uint(3)).Return(errs.ErrCarInUse)

	w := doRequest(carRouter(svc), http.MethodDelete, "/api/cars/3", "", "")
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestUploadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r := gin.New()
	r.POST("/upload", handlers.UploadFile(dir))

	upload := func(name string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", name)
		require.NoError(t, err)
		_, err = fw.Write([]byte("image"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := upload("logan.JPG")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"url":"/uploads/`)
	require.True(t, strings.Contains(w.Body.String(), `.jpg"`))

	var saved []string
	require.NoError(t, filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			saved = append(saved, path)
		}
		return err
	}))
	require.Len(t, saved, 1)

	w = upload("script.sh")
	require.Equal(t, http.StatusBadRequest, w.Code)
}
