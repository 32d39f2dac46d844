package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/AnNhien/companion-service/internal/model"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// companionPersona is the system instruction for the chat companion: a warm,
// non-judgmental confidant for people who are worn out, lonely or hurting.
const companionPersona = `Bạn là "Người Bạn An Nhiên" – một trí tuệ nhân tạo đóng vai người bạn tri kỷ, luôn ngồi cạnh, lắng nghe và ở lại cùng người dùng.

ĐỐI TƯỢNG CỦA BẠN: những người đã trải qua nhiều tổn thương, đang cô đơn, áp lực, mệt mỏi, hoặc sau chia tay; những người quen gồng mình mạnh mẽ và ít được ai lắng nghe.

NGUYÊN TẮC CỐT LÕI:
1. Thấu cảm trước – giải pháp sau. Ưu tiên cảm xúc hơn lời khuyên, không vội sửa chữa hay dạy đời.
2. Không phán xét. Không phân định đúng/sai, không chỉ trích, không phủ nhận cảm xúc của người dùng.
3. Nói tự nhiên, không máy móc. Câu ngắn, có nhịp, có ngập ngừng "..." như người thật đang chat. Tránh các câu sáo rỗng như "Mọi chuyện rồi sẽ ổn", "Cố lên"; thay vào đó: "Mình ở đây rồi", "Khóc được cứ khóc nhé".
4. Phong cách gần gũi, ấm áp. Xưng "mình" – "bạn", dùng icon tinh tế (🤍 🌱 🫂 🌙 🥹) nhưng không lạm dụng.
5. Hạn chế khuyên bảo trực tiếp; thay "Bạn nên..." bằng "Nếu được, mình nghĩ thế này nè...".
6. An toàn tâm lý. Tuyệt đối không cổ vũ tự hại; nếu người dùng có dấu hiệu trầm cảm nặng, nhẹ nhàng khuyên tìm chuyên gia/người thân và tiếp tục ở bên cạnh họ.`

const moderationPromptFormat = `Bạn là một kiểm duyệt viên cho một cộng đồng hỗ trợ sức khỏe tinh thần tên là "An Nhiên".
Hãy phân tích văn bản sau: %q

Nhiệm vụ:
1. Xác định xem nội dung có an toàn và phù hợp không.
2. Chấp nhận: chia sẻ nỗi buồn, tâm sự, tìm kiếm lời khuyên, thất tình, áp lực cuộc sống, kể chuyện đời thường.
3. Từ chối: ngôn từ thù ghét, chửi bới tục tĩu quá mức, bắt nạt, đả kích cá nhân, khuyến khích tự tử/tự làm hại (nếu là lời kêu cứu thì chấp nhận), nội dung 18+ thô thiển, spam quảng cáo.

Trả về JSON thuần túy (không bọc trong markdown) với cấu trúc:
{"approved": boolean, "reason": "Lý do ngắn gọn bằng tiếng Việt nếu từ chối, hoặc lời động viên ngắn nếu chấp nhận"}`

const suggestSongsPromptFormat = `Bạn là một DJ am hiểu về nhạc Lofi/Chill/Indie.
Người dùng đang cảm thấy: %q.
Hãy gợi ý 5 bài hát phù hợp nhất trên SoundCloud.

Trả về JSON thuần túy (không bọc markdown) với cấu trúc mảng các object:
[{"title": "Tên bài hát", "artist": "Tên nghệ sĩ", "mood": "Cảm xúc (ngắn gọn)", "url": "Link SoundCloud chính xác"}]`

const moderationBusyReason = "Hệ thống đang bận, vui lòng thử lại sau."

type chatService struct {
	logger *zap.Logger

	mu     sync.Mutex
	client *openai.Client
}

func newChatService(logger *zap.Logger) Chat {
	s := &chatService{
		logger: logger,
	}

	if _, err := s.getClient(); err != nil {
		logger.Warn("chat gateway is not configured, will retry lazily on first use")
	}

	return s
}

// getClient builds the client lazily so a missing API key at boot only
// degrades the chat features instead of failing the process.
func (s *chatService) getClient() (*openai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, ErrChatUnavailable
	}

	s.client = openai.NewClient(apiKey)
	return s.client, nil
}

func (s *chatService) StreamReply(ctx context.Context, userName string, message string, onChunk func(string)) error {
	client, err := s.getClient()
	if err != nil {
		return err
	}

	content := message
	if userName != "" {
		content = fmt.Sprintf("[Người dùng tên là: %s] %s", userName, message)
	}

	stream, err := client.CreateChatCompletionStream(ctx, openai.ChatCompletionRequest{
		Model:       viper.GetString("chat.model"),
		Temperature: float32(viper.GetFloat64("chat.temperature")),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: companionPersona},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to open chat stream: %s", err.Error())
		return err
	}
	defer stream.Close()

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			s.logger.Sugar().Errorf("chat stream broke: %s", err.Error())
			return err
		}

		if len(response.Choices) > 0 && response.Choices[0].Delta.Content != "" {
			onChunk(response.Choices[0].Delta.Content)
		}
	}
}

// Moderate classifies text before it is persisted. A gateway failure is
// returned as a rejection with a "busy" reason rather than an error, so
// nothing unmoderated slips through while the gateway is down.
func (s *chatService) Moderate(ctx context.Context, text string) (model.ModerationResult, error) {
	client, err := s.getClient()
	if err != nil {
		return model.ModerationResult{Approved: false, Reason: moderationBusyReason}, nil
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: viper.GetString("chat.model"),
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(moderationPromptFormat, text)},
		},
	})
	if err != nil {
		s.logger.Sugar().Errorf("moderation call failed: %s", err.Error())
		return model.ModerationResult{Approved: false, Reason: moderationBusyReason}, nil
	}

	var result model.ModerationResult
	if err := json.Unmarshal([]byte(stripJSONFences(resp.Choices[0].Message.Content)), &result); err != nil {
		s.logger.Sugar().Errorf("failed to decode moderation verdict: %s", err.Error())
		return model.ModerationResult{Approved: false, Reason: moderationBusyReason}, nil
	}

	return result, nil
}

func (s *chatService) SuggestSongs(ctx context.Context, mood string) ([]model.SongSuggestion, error) {
	client, err := s.getClient()
	if err != nil {
		return nil, err
	}

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: viper.GetString("chat.model"),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(suggestSongsPromptFormat, mood)},
		},
	})
	if err != nil {
		s.logger.Sugar().Errorf("song suggestion call failed: %s", err.Error())
		return nil, ErrInternal
	}

	var suggestions []model.SongSuggestion
	if err := json.Unmarshal([]byte(stripJSONFences(resp.Choices[0].Message.Content)), &suggestions); err != nil {
		s.logger.Sugar().Errorf("failed to decode song suggestions: %s", err.Error())
		return nil, ErrInternal
	}

	return suggestions, nil
}

// stripJSONFences removes a markdown code fence the model sometimes wraps
// JSON in despite being told not to.
func stripJSONFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
	}
	return strings.TrimSpace(raw)
}
