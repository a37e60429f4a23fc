package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bitbucket.org/kuhldata/merchdash_backend/config"
	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/utils"
	"bitbucket.org/kuhldata/merchdash_backend/workflow"
)

type importRequestBody struct {
	Type             string             `json:"type" binding:"required"`
	Season           string             `json:"season"`
	Data             []models.RowRecord `json:"data"`
	ReplaceExisting  bool               `json:"replaceExisting"`
	CostSource       string             `json:"costSource"`
	CostHeaderOffset int                `json:"costHeaderOffset"`
	FileName         string             `json:"fileName"`
}

func importStatusCode(err error) int {
	if errors.Is(err, workflow.ErrImportInProgress) {
		return http.StatusConflict
	}
	switch utils.KindOf(err) {
	case utils.ErrKindParseError:
		return http.StatusUnprocessableEntity
	case utils.ErrKindFileNotFound:
		return http.StatusBadRequest
	case utils.ErrKindStoreUnavailable, utils.ErrKindPartialImportFailure:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// importHandler ingests pre parsed rows posted as JSON.
func importHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body importRequestBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		recordType, err := workflow.ParseRecordType(body.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		username, _ := utils.GetUsernameFromContext(ctx)

		stats, err := workflow.RunImport(ctx, workflow.ImportRequest{
			Type:             recordType,
			Season:           body.Season,
			Rows:             body.Data,
			ReplaceExisting:  body.ReplaceExisting,
			CostSource:       models.CostSource(body.CostSource),
			CostHeaderOffset: body.CostHeaderOffset,
			FileName:         body.FileName,
			ImportedBy:       username,
		})
		if err != nil {
			c.JSON(importStatusCode(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
	}
}

// importFileHandler ingests an uploaded xlsx workbook. The raw file is
// archived to the snapshot bucket before parsing so a bad import can be
// replayed.
func importFileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := config.GetLogger()
		ctx := c.Request.Context()

		recordType, err := workflow.ParseRecordType(c.PostForm("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "file is required"})
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		defer file.Close()

		objectName := fmt.Sprintf("imports/%s/%s", recordType, utils.GenerateUniqueFilename(fileHeader.Filename))
		snapshotPath, archiveErr := utils.UploadReaderToGCS(ctx, objectName, file,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if archiveErr != nil {
			// archival is best effort
			config.LogError(logger, "imports", "importFileHandler", "archive workbook", fileHeader.Filename, archiveErr)
		}
		if _, err := file.Seek(0, 0); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
			return
		}

		workbook, err := models.ParseWorkbook(file)
		if err != nil {
			c.JSON(importStatusCode(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		rows := workbook.FirstSheetRows()
		if sheet := c.PostForm("sheet"); sheet != "" {
			rows = workbook.Sheets[sheet]
		}

		replaceExisting := true
		if v := c.PostForm("replaceExisting"); v != "" {
			replaceExisting, _ = strconv.ParseBool(v)
		}
		costHeaderOffset, _ := strconv.Atoi(c.PostForm("costHeaderOffset"))

		username, _ := utils.GetUsernameFromContext(ctx)
		stats, err := workflow.RunImport(ctx, workflow.ImportRequest{
			Type:             recordType,
			Season:           c.PostForm("season"),
			Rows:             rows,
			ReplaceExisting:  replaceExisting,
			CostSource:       models.CostSource(c.PostForm("costSource")),
			CostHeaderOffset: costHeaderOffset,
			FileName:         fileHeader.Filename,
			ImportedBy:       username,
		})
		if err != nil {
			c.JSON(importStatusCode(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats, "snapshot": snapshotPath})
	}
}

func deleteRecordsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		recordType, err := workflow.ParseRecordType(c.Param("type"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		deleted, err := workflow.DeleteRecordType(c.Request.Context(), recordType, c.Query("season"))
		if err != nil {
			c.JSON(importStatusCode(err), gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
	}
}

func importLogsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		logs, err := models.RecentImportLogs(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"logs": logs})
	}
}
