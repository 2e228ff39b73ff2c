package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"riddle-service/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

func HandleWithFiber[R Request, Res Response](handler FiberHandler[R, Res]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req R

		if err := parseRequest(c, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}

		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "details": err.Error()})
		}

		ctx := c.UserContext()
		res, status, err := handler.Handle(c, ctx, &req)

		if err != nil {
			zap.L().Error("Failed to handle request", zap.Error(err))
			return c.Status(status).JSON(fiber.Map{"error": err.Error(), "code": domain.ErrorCode(err)})
		}
		return c.Status(status).JSON(res)
	}
}

func parseRequest[R any](c *fiber.Ctx, req *R) error {
	if err := c.BodyParser(req); err != nil && !errors.Is(err, fiber.ErrUnprocessableEntity) {
		return err
	}

	if err := c.ParamsParser(req); err != nil {
		return err
	}

	if err := c.QueryParser(req); err != nil {
		return err
	}

	if err := c.ReqHeaderParser(req); err != nil {
		return err
	}

	return nil
}

func HandleWithFiberWS[R Request](handler FiberWSHandler[R]) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		var req R
		ctx := context.Background()

		handler.HandleWS(c, ctx, &req)
	})
}

// CommandFunc is a decoded, validated websocket command ready to run.
type CommandFunc func(ctx context.Context, sender domain.Identity, content json.RawMessage)

// HandleWSCommand decodes and validates the command payload, then runs
// handler. Any failure becomes a single ERROR event to the sender.
func HandleWSCommand[R Request](handler WSCommandHandler[R], notifier ErrorNotifier) CommandFunc {
	return func(ctx context.Context, sender domain.Identity, content json.RawMessage) {
		var req R

		if len(content) > 0 {
			if err := json.Unmarshal(content, &req); err != nil {
				reportCommandError(ctx, notifier, sender, fmt.Errorf("%w: malformed payload", domain.ErrInvalidInput))
				return
			}
		}

		if err := validate.Struct(req); err != nil {
			reportCommandError(ctx, notifier, sender, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error()))
			return
		}

		if err := handler.Handle(ctx, sender, &req); err != nil {
			reportCommandError(ctx, notifier, sender, err)
		}
	}
}

func reportCommandError(ctx context.Context, notifier ErrorNotifier, sender domain.Identity, err error) {
	zap.L().Warn("Command rejected",
		zap.Int64("user_id", sender.UserID),
		zap.String("code", domain.ErrorCode(err)),
		zap.Error(err))
	notifier.SendToUser(ctx, sender.UserID, domain.EventError, err.Error())
}
