package playerreport

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jhartwg/scoutbase/config"
	"github.com/jhartwg/scoutbase/internal/middleware"
	"github.com/jhartwg/scoutbase/internal/storage"
	"github.com/jhartwg/scoutbase/pkg/pdf"
	"github.com/jhartwg/scoutbase/pkg/utils"
)

const (
	// ReportKey holds the player-report form state.
	ReportKey = "scouting_player_report"
	// AttributesKey holds the 1-10 rating sheet, stored separately.
	AttributesKey = "scouting_player_attributes"
)

// PlayerReportController handles the player-scouting form documents
type PlayerReportController struct {
	docs      storage.DocumentRepository
	appConfig *config.Config
}

// NewPlayerReportController creates a new player report controller
func NewPlayerReportController(docs storage.DocumentRepository, appConfig *config.Config) *PlayerReportController {
	return &PlayerReportController{
		docs:      docs,
		appConfig: appConfig,
	}
}

func loadDoc[T any](docs storage.DocumentRepository, userID uint, key string) (T, error) {
	var doc T
	raw, found, err := docs.Get(userID, key)
	if err != nil || !found {
		return doc, err
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		log.Printf("playerreport: stored document %s malformed, starting empty: %v", key, err)
		var empty T
		return empty, nil
	}
	return doc, nil
}

func saveDoc(docs storage.DocumentRepository, userID uint, key string, doc interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return docs.Put(userID, key, raw)
}

// GetReport godoc
// @Summary Get the player-scouting form state
// @Tags player-report
// @Produce json
// @Success 200 {object} PlayerReport
// @Router /reports/player [get]
// @Security Bearer
func (c *PlayerReportController) GetReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	report, err := loadDoc[PlayerReport](c.docs, userID, ReportKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// PutReport godoc
// @Summary Replace the player-scouting form state
// @Tags player-report
// @Accept json
// @Produce json
// @Param report body PlayerReport true "Full form state"
// @Success 200 {object} PlayerReport
// @Router /reports/player [put]
// @Security Bearer
func (c *PlayerReportController) PutReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	var report PlayerReport
	if err := ctx.ShouldBindJSON(&report); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if err := saveDoc(c.docs, userID, ReportKey, report); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, report)
}

// ResetReport godoc
// @Summary Clear the player-scouting form
// @Description Deletes the form document and the rating sheet
// @Tags player-report
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /reports/player [delete]
// @Security Bearer
func (c *PlayerReportController) ResetReport(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	if err := c.docs.Delete(userID, ReportKey); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to reset report: " + err.Error()})
		return
	}
	if err := c.docs.Delete(userID, AttributesKey); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to reset attributes: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, utils.SuccessResponse{Message: "report cleared"})
}

// GetAttributes godoc
// @Summary Get the player rating sheet
// @Tags player-report
// @Produce json
// @Success 200 {object} PlayerAttributes
// @Router /reports/player/attributes [get]
// @Security Bearer
func (c *PlayerReportController) GetAttributes(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	attrs, err := loadDoc[PlayerAttributes](c.docs, userID, AttributesKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load attributes: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attrs)
}

// PutAttributes godoc
// @Summary Replace the player rating sheet
// @Tags player-report
// @Accept json
// @Produce json
// @Param attributes body PlayerAttributes true "Full rating sheet"
// @Success 200 {object} PlayerAttributes
// @Router /reports/player/attributes [put]
// @Security Bearer
func (c *PlayerReportController) PutAttributes(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	var attrs PlayerAttributes
	if err := ctx.ShouldBindJSON(&attrs); err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}
	if err := saveDoc(c.docs, userID, AttributesKey, attrs); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save attributes: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, attrs)
}

// UploadImage godoc
// @Summary Set the player photo
// @Tags player-report
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file (png or jpeg)"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Unsupported file"
// @Router /reports/player/image [post]
// @Security Bearer
func (c *PlayerReportController) UploadImage(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: "image file is required"})
		return
	}
	filename, err := utils.SaveUploadedImage(ctx, file, c.appConfig.App.UploadDir)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, utils.ErrorResponse{Error: err.Error()})
		return
	}

	report, err := loadDoc[PlayerReport](c.docs, userID, ReportKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}
	report.Image = filename
	if err := saveDoc(c.docs, userID, ReportKey, report); err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to save report: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, utils.SuccessResponse{Message: "image attached", Data: filename})
}

// ExportPDF godoc
// @Summary Download the player analysis as PDF
// @Tags player-report
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /reports/player/export.pdf [get]
// @Security Bearer
func (c *PlayerReportController) ExportPDF(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, utils.ErrorResponse{Error: "unauthorized"})
		return
	}
	report, err := loadDoc[PlayerReport](c.docs, userID, ReportKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load report: " + err.Error()})
		return
	}
	attrs, err := loadDoc[PlayerAttributes](c.docs, userID, AttributesKey)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, utils.ErrorResponse{Error: "failed to load attributes: " + err.Error()})
		return
	}

	b := pdf.NewBuilder(c.appConfig.PDF.BrandTitle)
	b.AddPage("SPIELER ANALYSE")

	name := report.Name
	if name == "" {
		name = "Unbekannter Spieler"
	}
	b.Title(name)

	if report.Image != "" {
		// A missing photo is skipped, the report continues without it.
		b.EmbedImage(filepath.Join(c.appConfig.App.UploadDir, filepath.Base(report.Image)), 40)
	}

	b.TextRow("Verein: "+report.Team, "Position: "+report.Position)
	b.TextRow("Geburtsdatum: "+report.Dob, "Fuß: "+report.Foot)
	b.TextRow("Größe: "+report.Height, "Nation: "+report.Country)
	b.Spacer(4)

	mc := report.MatchContext
	b.SectionTitle("SPIELKONTEXT")
	b.TextRow("Saison: "+mc.Season, "Gegner: "+mc.Opponent)
	b.TextRow("Datum: "+mc.Date, "Ergebnis: "+mc.Result)
	starter := "Nein"
	if mc.Starter {
		starter = "Ja"
	}
	b.TextRow("System: "+mc.Formation, "Startelf: "+starter)
	b.TextRow("Minuten: "+strconv.Itoa(mc.Minutes), "Tore/Vorlagen: "+strconv.Itoa(mc.Goals)+"/"+strconv.Itoa(mc.Assists))
	b.Spacer(4)

	b.SectionTitle("STÄRKEN & SCHWÄCHEN")
	b.TextBlock("Stärken", report.TextAttributes.Strengths)
	b.TextBlock("Schwächen", report.TextAttributes.Weaknesses)

	b.SectionTitle("TAKTISCHE BEOBACHTUNGEN")
	b.TextBlock("Im Ballbesitz", report.Tactical.InPossession)
	b.TextBlock("Gegen den Ball", report.Tactical.OutOfPossession)
	b.TextBlock("Defensivverhalten", report.Tactical.Defensive)
	b.TextBlock("Offensivverhalten", report.Tactical.Offensive)
	b.TextBlock("Fazit", report.Tactical.Summary)

	for _, section := range attrs.Sections() {
		b.SectionTitle(section.Title)
		for _, item := range section.Items {
			if item.Value > 0 {
				b.RatingBar(item.Label, item.Value)
			}
		}
		b.Spacer(3)
	}

	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", `attachment; filename="spieleranalyse.pdf"`)
	ctx.Status(http.StatusOK)
	if err := b.Output(ctx.Writer); err != nil {
		log.Printf("playerreport: pdf export failed: %v", err)
	}
}
