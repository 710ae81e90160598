// Package dispatch executes model function calls against the application:
// navigation and form-opening mutate the session only, create_client reaches
// the record store. Every outcome becomes a user-visible message; nothing
// escapes a chat turn.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/clique360/backend/internal/entity"
	"github.com/clique360/backend/internal/service"
)

// ModeCreate opens the entity-creation form of the active view.
const ModeCreate = "create"

// SearchMode returns the view mode that pre-filters a list by term.
func SearchMode(term string) string {
	return "search:" + term
}

// Session is the per-conversation presentation state plus the transcript.
// It is never persisted.
type Session struct {
	View     entity.View
	Mode     string
	Messages []entity.ChatMessage
}

func NewSession() *Session {
	return &Session{
		View: entity.ViewDashboard,
	}
}

func (s *Session) SetView(v entity.View, mode string) {
	s.View = v
	s.Mode = mode
}

func (s *Session) Append(m entity.ChatMessage) {
	s.Messages = append(s.Messages, m)
}

type ClientCreator interface {
	CreateClient(ctx context.Context, in service.ClientInput) (entity.Client, error)
}

type Result struct {
	Success bool
	Message string
}

type Dispatcher struct {
	clients ClientCreator
}

func New(clients ClientCreator) *Dispatcher {
	return &Dispatcher{
		clients: clients,
	}
}

// Dispatch performs one function call. Unknown names and downstream failures
// become failure results, never errors: a bad call must not kill the turn.
func (d *Dispatcher) Dispatch(ctx context.Context, sess *Session, call entity.FunctionCall) Result {
	action, err := call.Decode()
	if err != nil {
		slog.WarnContext(ctx, fmt.Sprintf("decode function call %q: %s", call.Name, err))

		if errors.Is(err, entity.ErrUnknownFunction) {
			return Result{Message: fmt.Sprintf("Função %s não encontrada.", call.Name)}
		}

		return Result{Message: fmt.Sprintf("Erro ao executar a função %s.", call.Name)}
	}

	switch a := action.(type) {
	case entity.NavigateTo:
		sess.SetView(a.View, "")
		return Result{Success: true, Message: fmt.Sprintf("Navegado para a secção %s.", a.View)}

	case entity.StartCreatingInvoice:
		sess.SetView(entity.ViewInvoices, ModeCreate)

		if a.ClientName != "" {
			return Result{
				Success: true,
				Message: fmt.Sprintf("Formulário de nova fatura aberto. O utilizador deve selecionar %s como cliente.", a.ClientName),
			}
		}

		return Result{Success: true, Message: "Formulário de nova fatura aberto."}

	case entity.StartCreatingClient:
		sess.SetView(entity.ViewClients, ModeCreate)
		return Result{Success: true, Message: "Formulário de novo cliente aberto."}

	case entity.StartCreatingProduct:
		sess.SetView(entity.ViewProducts, ModeCreate)
		return Result{Success: true, Message: "Formulário de novo produto aberto."}

	case entity.FindClientToEdit:
		sess.SetView(entity.ViewClients, SearchMode(a.ClientName))
		return Result{Success: true, Message: fmt.Sprintf("A procurar pelo cliente %q para que o possa editar.", a.ClientName)}

	case entity.FindProductToEdit:
		sess.SetView(entity.ViewProducts, SearchMode(a.ProductNameOrCode))
		return Result{Success: true, Message: fmt.Sprintf("A procurar pelo produto %q para que o possa editar.", a.ProductNameOrCode)}

	case entity.CreateClient:
		client, err := d.clients.CreateClient(ctx, service.ClientInput{
			Name:    a.Name,
			Email:   a.Email,
			TaxID:   a.TaxID,
			Phone:   a.Phone,
			Address: a.Address,
			City:    a.City,
			State:   a.State,
			Zip:     a.Zip,
			Country: a.Country,
		})
		if err != nil {
			slog.ErrorContext(ctx, fmt.Sprintf("create client via function call: %s", err))
			return Result{Message: fmt.Sprintf("Erro ao executar a função %s.", call.Name)}
		}

		return Result{Success: true, Message: fmt.Sprintf("Cliente %q criado com sucesso.", client.Name)}

	default:
		slog.ErrorContext(ctx, fmt.Sprintf("unhandled action %T for function %q", action, call.Name))
		return Result{Message: fmt.Sprintf("Erro ao executar a função %s.", call.Name)}
	}
}

// DispatchAll runs calls in order, one at a time. A failing call does not
// stop the ones after it.
func (d *Dispatcher) DispatchAll(ctx context.Context, sess *Session, calls []entity.FunctionCall) []Result {
	results := make([]Result, 0, len(calls))

	for _, call := range calls {
		results = append(results, d.Dispatch(ctx, sess, call))
	}

	return results
}

// Messages concatenates the result messages in dispatch order.
func Messages(results []Result) string {
	var out string

	for i, r := range results {
		if i > 0 {
			out += "\n"
		}

		out += r.Message
	}

	return out
}
