package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/clique360/backend/internal/clients/gemini"
	"github.com/clique360/backend/internal/entity"
)

// streamBuffer bounds how far the provider may run ahead of a slow consumer.
const streamBuffer = 16

// streamErrorText is appended to the transcript when the provider fails after
// the stream already started.
const streamErrorText = "\n[Erro no servidor: Interrupção da resposta. Por favor tente novamente.]"

const systemInstruction = `É um assistente de faturação inteligente para a aplicação Clique 360. O seu objetivo é ajudar os utilizadores a gerir as suas faturas, clientes e produtos através da conversação. Pode:
1. Começar a criar novas faturas. Vai precisar do nome do cliente.
2. Começar a criar novos clientes (abrindo o formulário).
3. Criar um novo cliente diretamente se forem fornecidos o nome, email e NIF.
4. Começar a criar novos produtos ou serviços.
5. Encontrar clientes ou produtos existentes para que o utilizador os possa editar.
6. Navegar o utilizador para diferentes secções da aplicação (Início, Faturas, Clientes, Produtos, Empresa, Definições).
Quando um utilizador pedir para realizar uma ação, use as ferramentas disponíveis. Peça sempre esclarecimentos se faltar informação. Se o utilizador pedir algo que não se enquadre nestas capacidades, como responder a perguntas de conhecimento geral ou realizar tarefas não relacionadas com a faturação, recuse educadamente e lembre-o das suas funções principais.`

type Provider interface {
	StreamGenerateContent(
		ctx context.Context,
		system string,
		contents []gemini.Content,
		declarations []gemini.FunctionDeclaration,
	) (entity.ChatStream, error)
}

// ChatService relays provider output to the HTTP layer chunk by chunk.
type ChatService struct {
	provider Provider
}

func NewChat(provider Provider) *ChatService {
	return &ChatService{
		provider: provider,
	}
}

// Stream opens a provider stream over the conversation and returns a channel
// of chunks. The channel closes when the provider finishes, fails, or ctx is
// cancelled; a mid-stream failure delivers one error fragment first.
func (s *ChatService) Stream(
	ctx context.Context,
	message string,
	history []entity.ChatMessage,
) (<-chan entity.ChatChunk, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", entity.ErrValidation)
	}

	contents := make([]gemini.Content, 0, len(history)+1)

	for _, m := range history {
		role := "model"
		if m.Sender == entity.ChatSenderUser {
			role = "user"
		}

		contents = append(contents, gemini.Content{
			Role:  role,
			Parts: []gemini.Part{{Text: m.Text}},
		})
	}

	contents = append(contents, gemini.Content{
		Role:  "user",
		Parts: []gemini.Part{{Text: message}},
	})

	stream, err := s.provider.StreamGenerateContent(ctx, systemInstruction, contents, declarations())
	if err != nil {
		return nil, fmt.Errorf("open provider stream: %w", err)
	}

	out := make(chan entity.ChatChunk, streamBuffer)

	go s.relay(ctx, stream, out)

	return out, nil
}

func (s *ChatService) relay(ctx context.Context, stream entity.ChatStream, out chan<- entity.ChatChunk) {
	defer close(out)
	defer stream.Close()

	for {
		chunk, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return
			}

			slog.ErrorContext(ctx, fmt.Sprintf("provider stream failed: %s", err))

			// Best effort: the consumer may already be gone.
			select {
			case out <- entity.ChatChunk{Text: streamErrorText}:
			case <-ctx.Done():
			}

			return
		}

		select {
		case out <- chunk:
		case <-ctx.Done():
			return
		}
	}
}

// declarations is the tool schema offered to the model, one declaration per
// dispatcher action.
func declarations() []gemini.FunctionDeclaration {
	return []gemini.FunctionDeclaration{
		{
			Name:        entity.FunctionNavigateTo,
			Description: "Navega para uma secção específica da aplicação.",
			Parameters: &gemini.Schema{
				Type: "OBJECT",
				Properties: map[string]*gemini.Schema{
					"view": {
						Type:        "STRING",
						Description: "A secção para a qual navegar.",
						Enum:        []string{"dashboard", "invoices", "clients", "products", "company", "settings"},
					},
				},
				Required: []string{"view"},
			},
		},
		{
			Name:        entity.FunctionStartCreatingInvoice,
			Description: "Abre o formulário para começar a criar uma nova fatura.",
			Parameters: &gemini.Schema{
				Type: "OBJECT",
				Properties: map[string]*gemini.Schema{
					"clientName": {
						Type:        "STRING",
						Description: "O nome do cliente para quem a fatura está a ser criada.",
					},
				},
			},
		},
		{
			Name:        entity.FunctionStartCreatingClient,
			Description: "Abre o formulário para começar a criar um novo cliente.",
		},
		{
			Name:        entity.FunctionStartCreatingProduct,
			Description: "Abre o formulário para começar a criar um novo produto ou serviço.",
		},
		{
			Name:        entity.FunctionCreateClient,
			Description: "Cria um novo cliente com os detalhes fornecidos. Requer nome, email e NIF.",
			Parameters: &gemini.Schema{
				Type: "OBJECT",
				Properties: map[string]*gemini.Schema{
					"name":    {Type: "STRING"},
					"email":   {Type: "STRING"},
					"tax_id":  {Type: "STRING"},
					"phone":   {Type: "STRING"},
					"address": {Type: "STRING"},
					"city":    {Type: "STRING"},
					"state":   {Type: "STRING"},
					"zip":     {Type: "STRING"},
					"country": {Type: "STRING"},
				},
				Required: []string{"name", "email", "tax_id"},
			},
		},
		{
			Name:        entity.FunctionFindClientToEdit,
			Description: "Encontra um cliente para editar. Leva o utilizador para a página de clientes com um filtro de pesquisa aplicado.",
			Parameters: &gemini.Schema{
				Type: "OBJECT",
				Properties: map[string]*gemini.Schema{
					"client_name": {
						Type:        "STRING",
						Description: "O nome do cliente a ser procurado para edição.",
					},
				},
				Required: []string{"client_name"},
			},
		},
		{
			Name:        entity.FunctionFindProductToEdit,
			Description: "Encontra um produto para editar. Leva o utilizador para a página de produtos com um filtro de pesquisa aplicado.",
			Parameters: &gemini.Schema{
				Type: "OBJECT",
				Properties: map[string]*gemini.Schema{
					"product_name_or_code": {
						Type:        "STRING",
						Description: "O nome ou código do produto a ser procurado para edição.",
					},
				},
				Required: []string{"product_name_or_code"},
			},
		},
	}
}
