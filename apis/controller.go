package apis

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/supakorn-kn/travel-admin/errors"
	"github.com/supakorn-kn/travel-admin/listview"
	"github.com/supakorn-kn/travel-admin/views"
)

const viewContextKey = "view"

// RegisterListAPI serves every list of lists under group/:entity.
func RegisterListAPI(lists Lists, group *gin.RouterGroup) {

	entity := group.Group(":entity")

	entity.Use(func(ctx *gin.Context) {

		view, err := lists.Get(ctx.Param("entity"))
		if err != nil {
			writeErrorJSON(ctx, err)
			ctx.Abort()
			return
		}

		ctx.Set(viewContextKey, view)
		ctx.Next()
	})

	entity.GET("", func(ctx *gin.Context) {

		query, err := bindQuery(ctx)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		page, err := viewOf(ctx).Query(query)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: page})
	})

	entity.POST("refresh", func(ctx *gin.Context) {

		view := viewOf(ctx)
		if err := view.Load(ctx.Request.Context()); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		page, err := view.Query(views.Query{})
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: page})
	})

	entity.POST("sort", func(ctx *gin.Context) {

		view := viewOf(ctx)
		if err := view.SetSort(ctx.Query("field"), listview.SortOrder(ctx.Query("order"))); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		page, err := view.Query(views.Query{})
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: page})
	})

	entity.GET("export", func(ctx *gin.Context) {

		var fields []string
		for _, field := range strings.Split(ctx.Query("fields"), ",") {
			if field = strings.TrimSpace(field); field != "" {
				fields = append(fields, field)
			}
		}

		csv, err := viewOf(ctx).ExportCSV(fields...)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		filename := fmt.Sprintf("%s_%s.csv", ctx.Param("entity"), time.Now().Format(time.DateOnly))
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
	})

	entity.GET("notices", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, Response{Result: viewOf(ctx).Notices()})
	})

	entity.DELETE("notices/:id", func(ctx *gin.Context) {

		noticeID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil || !viewOf(ctx).Dismiss(noticeID) {
			writeErrorJSON(ctx, errors.ObjectIDNotFoundError.New(ctx.Param("id")))
			return
		}

		ctx.Status(http.StatusNoContent)
	})

	entity.DELETE(":id", func(ctx *gin.Context) {

		if err := viewOf(ctx).Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.Status(http.StatusNoContent)
	})

	entity.POST(":id/toggle", func(ctx *gin.Context) {

		itemID := ctx.Param("id")

		expanded, err := viewOf(ctx).ToggleExpanded(itemID)
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: map[string]any{"id": itemID, "is_expanded": expanded}})
	})
}

// RegisterDraftsAPI serves the saved form drafts under group.
func RegisterDraftsAPI(drafts Drafts, group *gin.RouterGroup) {

	group.GET(":key", func(ctx *gin.Context) {

		draft, err := drafts.Get(ctx.Request.Context(), ctx.Param("key"))
		if err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, Response{Result: draft})
	})

	group.PUT(":key", func(ctx *gin.Context) {

		var draft map[string]any
		if err := ctx.ShouldBindJSON(&draft); err != nil {
			writeErrorJSON(ctx, errors.RequestBodyInvalidError.Wrap(err, err))
			return
		}

		if err := drafts.Save(ctx.Request.Context(), ctx.Param("key"), draft); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, OKResponse)
	})

	group.DELETE(":key", func(ctx *gin.Context) {

		if err := drafts.Remove(ctx.Request.Context(), ctx.Param("key")); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.Status(http.StatusNoContent)
	})

	group.DELETE("", func(ctx *gin.Context) {

		if err := drafts.Clear(ctx.Request.Context()); err != nil {
			writeErrorJSON(ctx, err)
			return
		}

		ctx.Status(http.StatusNoContent)
	})
}

func viewOf(ctx *gin.Context) views.View {
	return ctx.MustGet(viewContextKey).(views.View)
}

func bindQuery(ctx *gin.Context) (views.Query, error) {

	var query views.Query

	if search, ok := ctx.GetQuery("search"); ok {
		query.Search = &search
	}

	query.Sort = ctx.Query("sort")
	query.Order = listview.SortOrder(ctx.Query("order"))

	if page := ctx.Query("page"); page != "" {

		parsed, err := strconv.Atoi(page)
		if err != nil || parsed < 1 {
			return views.Query{}, errors.CurrentPageInvalidError.New()
		}

		query.Page = parsed
	}

	return query, nil
}

func writeErrorJSON(ctx *gin.Context, err error) {

	assertedError, ok := errors.TryAssertError(err)
	if !ok {
		unknown := errors.UnknownError.Wrap(err, err)
		ctx.JSON(http.StatusInternalServerError, Response{Error: &unknown})
		return
	}

	var statusCode int
	switch assertedError.Code {
	case errors.ObjectIDNotFoundErrorCode, errors.EntityNotFoundErrorCode:
		statusCode = http.StatusNotFound
	case errors.DeleteInProgressErrorCode:
		statusCode = http.StatusConflict
	case errors.FetchFailedErrorCode, errors.DeleteFailedErrorCode:
		statusCode = http.StatusBadGateway
	default:
		statusCode = http.StatusBadRequest
	}

	ctx.JSON(statusCode, Response{Error: &assertedError})
}
