package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bitbucket.org/kuhldata/merchdash_backend/models"
	"bitbucket.org/kuhldata/merchdash_backend/models/reports"
	"bitbucket.org/kuhldata/merchdash_backend/workflow"
)

func seasonsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "seasonsHandler")
		defer span.End()

		seasons, err := models.ListSeasons(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seasons": seasons})
	}
}

func productsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		products, total, err := models.FindProducts(c.Request.Context(), models.ProductFilter{
			Season:   c.Query("season"),
			Category: c.Query("category"),
			Gender:   c.Query("gender"),
			Search:   c.Query("search"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "total": total})
	}
}

func salesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		offset, _ := strconv.Atoi(c.Query("offset"))
		records, total, err := models.FindSalesRecords(c.Request.Context(), models.SalesFilter{
			Season:   c.Query("season"),
			Customer: c.Query("customer"),
			Channel:  c.Query("channel"),
			Category: c.Query("category"),
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sales": records, "total": total})
	}
}

func inventoryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := models.FindInventoryRecords(c.Request.Context(), c.Query("style"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"inventory": records,
			"summary":   workflow.SummarizeInventory(records),
		})
	}
}

func seasonComparisonHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "seasonComparisonHandler")
		defer span.End()

		seasons := splitAndTrim(c.Query("seasons"))
		rows, err := reports.GetSeasonComparisonReport(ctx, seasons)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

func salesByCustomerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := reports.GetSalesByCustomerReport(c.Request.Context(), c.Query("season"), c.Query("channel"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

func marginReportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, span := tracer.Start(c.Request.Context(), "marginReportHandler")
		defer span.End()

		rows, err := reports.GetMarginReport(ctx, c.Query("season"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rows": rows})
	}
}

func marginReportExportHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		season := c.Query("season")
		rows, err := reports.GetMarginReport(c.Request.Context(), season)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		exporters := make([]reports.ExcelExporter, 0, len(rows))
		for _, row := range rows {
			exporters = append(exporters, *row)
		}
		content, err := reports.ExportExcel(exporters, "Margins",
			"Style Number", "Description", "Category", "Season",
			"Wholesale", "Pricing Source", "Landed", "Cost Source", "Margin %")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=margins_%s.xlsx", season))
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
	}
}

// summaryHandler rebuilds one aggregation over the sales snapshot for
// the requested seasons.
func summaryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		seasons := splitAndTrim(c.Query("seasons"))
		records, err := models.FindSalesBySeasons(c.Request.Context(), seasons)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		var summaries []workflow.DimensionSummary
		dimension := strings.ToLower(c.DefaultQuery("dimension", "channel"))
		switch dimension {
		case "channel":
			summaries = workflow.SummarizeByChannel(records)
		case "category":
			summaries = workflow.SummarizeByCategory(records)
		case "gender":
			summaries = workflow.SummarizeByGender(records)
		case "customer":
			summaries = workflow.SummarizeByCustomer(records)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown dimension " + dimension})
			return
		}
		c.JSON(http.StatusOK, gin.H{"dimension": dimension, "rows": summaries})
	}
}
