package projectfile_test

import (
	"changeflow/bizerror"
	"changeflow/domain"
	"changeflow/projectfile"
	"changeflow/testinfra"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestProjectFileRestAPI(t *testing.T) {
	RegisterTestingT(t)
	os.Unsetenv("ADMIN_SECRET")

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	projectfile.RegisterProjectFileRestAPI(router)

	t.Run("should export the current project document", func(t *testing.T) {
		projectfile.ExportProjectFileFunc = func() *projectfile.ProjectFile {
			return &projectfile.ProjectFile{Settings: domain.AppSettings{ProjectName: "Gas Main Replacement",
				ApproverConfig: map[string]string{}}, ChangeOrders: []domain.ChangeOrder{}}
		}
		defer func() { projectfile.ExportProjectFileFunc = projectfile.ExportProjectFile }()

		req := httptest.NewRequest(http.MethodGet, projectfile.PathProjectFile, nil)
		status, body, recorder := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(recorder.Header().Get("Content-Disposition")).To(ContainSubstring("attachment"))
		Expect(body).To(MatchJSON(`{"settings":{"projectName":"Gas Main Replacement","projectLocation":"",
			"projectManager":"","approverConfig":{}},"changeOrders":[]}`))
	})

	t.Run("should surface an import format failure with no state change", func(t *testing.T) {
		projectfile.ImportProjectFileFunc = func(content []byte) (*projectfile.ProjectFile, error) {
			return nil, &bizerror.ErrImportFormat{Cause: errors.New("settings is missing")}
		}
		defer func() { projectfile.ImportProjectFileFunc = projectfile.ImportProjectFile }()

		req := httptest.NewRequest(http.MethodPost, projectfile.PathProjectFile, strings.NewReader(`{}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"projectfile.invalid_format",
			"message":"invalid project file: settings is missing","data":null}`))
	})

	t.Run("should import a valid document", func(t *testing.T) {
		var received []byte
		projectfile.ImportProjectFileFunc = func(content []byte) (*projectfile.ProjectFile, error) {
			received = content
			return &projectfile.ProjectFile{Settings: domain.AppSettings{ApproverConfig: map[string]string{}},
				ChangeOrders: []domain.ChangeOrder{}}, nil
		}
		defer func() { projectfile.ImportProjectFileFunc = projectfile.ImportProjectFile }()

		req := httptest.NewRequest(http.MethodPost, projectfile.PathProjectFile,
			strings.NewReader(`{"settings":{"approverConfig":{}},"changeOrders":[]}`))
		status, _, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(string(received)).To(Equal(`{"settings":{"approverConfig":{}},"changeOrders":[]}`))
	})
}
