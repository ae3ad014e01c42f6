package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	v1 "churchtrack.com/churchtrack/churchtrack/v1"
	"churchtrack.com/churchtrack/utils"
	"churchtrack.com/churchtrack/views"
	"churchtrack.com/churchtrack/web/common"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func criteriaFrom(c *gin.Context) views.Criteria {
	return views.Criteria{
		ServiceID:     c.DefaultQuery("serviceId", views.AllServices),
		NameSubstring: c.Query("name"),
	}
}

// AttendanceList serves the filterable record table: all records projected
// through the service and name criteria, with stats recomputed over the
// filtered subset. The table is windowed by page/pageSize; stats and the
// reported total always cover the whole filtered set.
func (con *Console) AttendanceList(c *gin.Context) {
	attendances, err := con.Client.Attendance.All()
	if err != nil {
		con.respondListError(c, err)
		return
	}

	services, err := con.Client.Services.All()
	if err != nil {
		con.respondListError(c, err)
		return
	}

	filtered := views.Filter(attendances, criteriaFrom(c))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("pageSize", "0"))

	c.JSON(http.StatusOK, common.NewSearchResponse(gin.H{
		"attendances": pageOf(filtered, page, size),
		"stats":       views.ComputeStats(filtered),
		"services":    services,
	}, int64(len(filtered))))
}

// pageOf windows records for the table. A size of zero or less disables
// paging and returns everything.
func pageOf(records []v1.AttendanceRecord, page, size int) []v1.AttendanceRecord {
	if size <= 0 {
		return records
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * size
	if start >= len(records) {
		return []v1.AttendanceRecord{}
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// AttendanceExport streams the filtered records as a spreadsheet, newest
// first, with the service list on a second sheet.
func (con *Console) AttendanceExport(c *gin.Context) {
	attendances, err := con.Client.Attendance.All()
	if err != nil {
		_ = con.Notify.Error(fmt.Sprintf("attendance export failed: %v", err))
		con.respondError(c, err)
		return
	}

	services, err := con.Client.Services.All()
	if err != nil {
		_ = con.Notify.Error(fmt.Sprintf("attendance export failed: %v", err))
		con.respondError(c, err)
		return
	}

	criteria := criteriaFrom(c)
	filtered := views.Filter(attendances, criteria)
	records := views.RecentN(filtered, len(filtered))

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []interface{}{"Name", "Service", "Status", "Distance (m)", "Checked At", "Notes"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		con.respondError(c, err)
		return
	}

	for i, r := range records {
		distance := ""
		if r.Distance != nil {
			distance = fmt.Sprintf("%d", int(math.Round(*r.Distance)))
		}
		row := []interface{}{r.UserName, r.ServiceName, views.StatusLabel(r.Status), distance, r.CheckedAt, utils.Format(r.Notes)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			con.respondError(c, err)
			return
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			con.respondError(c, err)
			return
		}
	}

	if err := writeServiceSheet(f, services); err != nil {
		con.respondError(c, err)
		return
	}

	filename := exportFilename(services, criteria)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	if err := f.Write(c.Writer); err != nil {
		_ = con.Notify.Error(fmt.Sprintf("attendance export failed: %v", err))
	}
}

func writeServiceSheet(f *excelize.File, services []v1.Service) error {
	const sheet = "Services"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []interface{}{"Name", "Time", "Type", "Active"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, s := range services {
		row := []interface{}{s.Name, s.ServiceTime, s.Type, utils.FormatBoolean(s.Active, "Yes", "No")}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// exportFilename names the download after the selected service when the
// export is filtered to one.
func exportFilename(services []v1.Service, criteria views.Criteria) string {
	date := time.Now().Format("20060102")
	if criteria.ServiceID == "" || criteria.ServiceID == views.AllServices {
		return fmt.Sprintf("attendance-%s.xlsx", date)
	}

	svc := utils.Find(services, func(s v1.Service) bool {
		return strconv.FormatInt(s.ID, 10) == criteria.ServiceID
	})
	if svc == nil {
		return fmt.Sprintf("attendance-%s.xlsx", date)
	}

	slug := strings.ReplaceAll(strings.ToLower(svc.Name), " ", "-")
	return fmt.Sprintf("attendance-%s-%s.xlsx", slug, date)
}
