package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/raushankrgupta/fitly-ai/catalog"
	"github.com/raushankrgupta/fitly-ai/config"
	"github.com/raushankrgupta/fitly-ai/models"
	"github.com/raushankrgupta/fitly-ai/utils"
)

// Seeds the curated option catalog. Safe to run repeatedly: existing options
// keep their usage counters and creation time, only the curated fields are
// refreshed.
func main() {
	config.LoadConfig()

	if err := utils.ConnectMongo(config.MongoURI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	store := catalog.NewMongoStore(utils.GetCollection(config.DBName, "prompt_options"))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	created, updated := 0, 0
	for _, seed := range seedOptions() {
		existing, err := store.FindOne(ctx, seed.Category, seed.Value)
		if err != nil && err != catalog.ErrNotFound {
			log.Fatalf("Lookup failed for %s:%s: %v", seed.Category, seed.Value, err)
		}

		now := time.Now()
		if existing != nil {
			seed.ID = existing.ID
			seed.UsageCount = existing.UsageCount
			seed.LastUsed = existing.LastUsed
			seed.CreatedAt = existing.CreatedAt
			if err := store.Replace(ctx, &seed); err != nil {
				log.Fatalf("Update failed for %s:%s: %v", seed.Category, seed.Value, err)
			}
			updated++
			continue
		}

		seed.CreatedAt = now
		seed.UpdatedAt = now
		if err := store.Insert(ctx, &seed); err != nil {
			log.Fatalf("Insert failed for %s:%s: %v", seed.Category, seed.Value, err)
		}
		created++
	}

	fmt.Printf("Seeded option catalog: %d created, %d updated\n", created, updated)
}

func option(category, value, label, labelVi, suggestion, suggestionVi string, details map[string]string) models.Option {
	return models.Option{
		Category:           category,
		Value:              value,
		Label:              label,
		LabelVi:            labelVi,
		PromptSuggestion:   suggestion,
		PromptSuggestionVi: suggestionVi,
		TechnicalDetails:   details,
		Source:             "seed",
		IsActive:           true,
	}
}

func seedOptions() []models.Option {
	opts := []models.Option{
		// Scenes. Technical details pin the background so repeated renders
		// of the same scene stay visually consistent.
		option(models.CategoryScene, "studio", "Studio", "Phòng chụp",
			"professional photography studio with seamless backdrop", "phòng chụp chuyên nghiệp với phông nền liền mạch",
			map[string]string{"background": "seamless paper backdrop", "floor": "polished concrete", "space": "spacious professional studio"}),
		option(models.CategoryScene, "white-background", "White Background", "Nền trắng",
			"pure white seamless background", "nền trắng tinh khiết liền mạch",
			map[string]string{"background": "pure white, RGB(255,255,255)", "shadows": "soft subtle shadow under subject", "style": "clean e-commerce look"}),
		option(models.CategoryScene, "urban-street", "Urban Street", "Đường phố",
			"stylish city street with modern architecture", "đường phố thành thị phong cách với kiến trúc hiện đại",
			map[string]string{"background": "city buildings, slightly blurred", "depth": "strong background separation", "time": "daytime"}),
		option(models.CategoryScene, "minimalist-indoor", "Minimalist Indoor", "Nội thất tối giản",
			"clean minimalist interior with neutral tones", "không gian nội thất tối giản với tông màu trung tính",
			map[string]string{"background": "clean walls, minimal furniture", "palette": "neutral tones", "mood": "calm, uncluttered"}),
		option(models.CategoryScene, "cafe", "Cafe", "Quán cà phê",
			"cozy cafe interior with warm ambience", "quán cà phê ấm cúng",
			map[string]string{"background": "cafe interior, warm wood tones", "props": "coffee table, soft seating", "depth": "softly blurred background"}),
		option(models.CategoryScene, "outdoor-park", "Outdoor Park", "Công viên",
			"lush green park with natural daylight", "công viên xanh mát với ánh sáng tự nhiên",
			map[string]string{"background": "greenery and trees, softly blurred", "light": "natural daylight", "season": "spring-summer foliage"}),
		option(models.CategoryScene, "office", "Office", "Văn phòng",
			"modern office environment", "môi trường văn phòng hiện đại",
			map[string]string{"background": "modern office, glass and neutral walls", "props": "desk, subtle office elements", "tone": "professional"}),
		option(models.CategoryScene, "luxury-interior", "Luxury Interior", "Nội thất sang trọng",
			"elegant luxury interior with refined details", "nội thất sang trọng với chi tiết tinh tế",
			map[string]string{"background": "elegant interior, marble and brass accents", "light": "warm ambient", "mood": "upscale"}),
		option(models.CategoryScene, "rooftop", "Rooftop", "Sân thượng",
			"rooftop terrace with city skyline view", "sân thượng nhìn ra đường chân trời thành phố",
			map[string]string{"background": "city skyline", "time": "late afternoon", "depth": "skyline softly defocused"}),

		// Lighting
		option(models.CategoryLighting, "soft-diffused", "Soft Diffused", "Ánh sáng khuếch tán",
			"soft diffused lighting with gentle shadows", "ánh sáng khuếch tán mềm mại",
			map[string]string{"source": "large softbox", "shadows": "soft, low contrast", "temperature": "neutral 5500K"}),
		option(models.CategoryLighting, "natural-window", "Natural Window", "Ánh sáng cửa sổ",
			"natural window light from the side", "ánh sáng tự nhiên từ cửa sổ",
			map[string]string{"source": "window light, one side", "shadows": "gentle directional", "temperature": "daylight"}),
		option(models.CategoryLighting, "golden-hour", "Golden Hour", "Giờ vàng",
			"warm golden hour sunlight", "ánh nắng giờ vàng ấm áp",
			map[string]string{"source": "low warm sun", "tone": "golden, warm highlights", "temperature": "warm 3500K"}),
		option(models.CategoryLighting, "dramatic-rembrandt", "Dramatic Rembrandt", "Ánh sáng Rembrandt",
			"dramatic Rembrandt lighting with defined shadows", "ánh sáng Rembrandt kịch tính",
			map[string]string{"source": "single key light 45 degrees", "shadows": "triangle cheek shadow", "contrast": "high"}),
		option(models.CategoryLighting, "high-key", "High Key", "High key",
			"bright high-key lighting with minimal shadows", "ánh sáng high-key tươi sáng",
			map[string]string{"exposure": "bright, airy", "shadows": "minimal", "background": "light toned"}),
		option(models.CategoryLighting, "backlit", "Backlit", "Ngược sáng",
			"backlit glow with rim light around the subject", "ánh sáng ngược tạo viền sáng",
			map[string]string{"source": "behind subject", "effect": "rim light halo", "flare": "subtle"}),
		option(models.CategoryLighting, "neon-colored", "Neon Colored", "Đèn neon",
			"colored neon lighting with vibrant hues", "ánh đèn neon nhiều màu",
			map[string]string{"source": "neon signs", "palette": "magenta and cyan accents", "mood": "nightlife"}),
		option(models.CategoryLighting, "overcast-outdoor", "Overcast Outdoor", "Trời nhiều mây",
			"even overcast daylight", "ánh sáng đều trời nhiều mây",
			map[string]string{"source": "overcast sky", "shadows": "very soft", "temperature": "cool daylight"}),

		// Moods
		option(models.CategoryMood, "elegant", "Elegant", "Thanh lịch", "elegant and sophisticated atmosphere", "không khí thanh lịch và tinh tế", nil),
		option(models.CategoryMood, "confident", "Confident", "Tự tin", "confident, empowered presence", "thần thái tự tin", nil),
		option(models.CategoryMood, "playful", "Playful", "Vui tươi", "playful, lively energy", "năng lượng vui tươi", nil),
		option(models.CategoryMood, "romantic", "Romantic", "Lãng mạn", "soft romantic atmosphere", "không khí lãng mạn nhẹ nhàng", nil),
		option(models.CategoryMood, "energetic", "Energetic", "Năng động", "dynamic energetic vibe", "phong cách năng động", nil),
		option(models.CategoryMood, "mysterious", "Mysterious", "Bí ẩn", "mysterious moody undertone", "không khí bí ẩn", nil),
		option(models.CategoryMood, "calm", "Calm", "Bình yên", "calm serene mood", "tâm trạng bình yên", nil),

		// Styles
		option(models.CategoryStyle, "casual", "Casual", "Thường ngày", "relaxed casual styling", "phong cách thường ngày thoải mái", nil),
		option(models.CategoryStyle, "formal", "Formal", "Trang trọng", "polished formal styling", "phong cách trang trọng chỉn chu", nil),
		option(models.CategoryStyle, "streetwear", "Streetwear", "Đường phố", "contemporary streetwear styling", "phong cách streetwear đương đại", nil),
		option(models.CategoryStyle, "vintage", "Vintage", "Hoài cổ", "vintage-inspired styling", "phong cách hoài cổ", nil),
		option(models.CategoryStyle, "minimalist", "Minimalist", "Tối giản", "clean minimalist styling", "phong cách tối giản", nil),
		option(models.CategoryStyle, "bohemian", "Bohemian", "Phóng khoáng", "free-spirited bohemian styling", "phong cách bohemian phóng khoáng", nil),

		// Color palettes
		option(models.CategoryColor, "neutral", "Neutral", "Trung tính", "neutral tones, beige and cream", "tông màu trung tính", nil),
		option(models.CategoryColor, "warm", "Warm", "Ấm", "warm earthy tones", "tông màu ấm", nil),
		option(models.CategoryColor, "cool", "Cool", "Lạnh", "cool blue and grey tones", "tông màu lạnh", nil),
		option(models.CategoryColor, "pastel", "Pastel", "Pastel", "soft pastel palette", "bảng màu pastel nhẹ nhàng", nil),
		option(models.CategoryColor, "monochrome", "Monochrome", "Đơn sắc", "monochrome black and white", "đơn sắc đen trắng", nil),
		option(models.CategoryColor, "vibrant", "Vibrant", "Rực rỡ", "bold vibrant colors", "màu sắc rực rỡ", nil),

		// Camera angles
		option(models.CategoryCameraAngle, "eye-level", "Eye Level", "Ngang tầm mắt", "eye-level full view", "góc ngang tầm mắt", nil),
		option(models.CategoryCameraAngle, "full-body", "Full Body", "Toàn thân", "full body shot showing the complete outfit", "góc chụp toàn thân", nil),
		option(models.CategoryCameraAngle, "close-up", "Close Up", "Cận cảnh", "close-up shot emphasizing garment details", "góc cận cảnh chi tiết", nil),
		option(models.CategoryCameraAngle, "low-angle", "Low Angle", "Góc thấp", "low angle shot for a powerful presence", "góc máy thấp", nil),
		option(models.CategoryCameraAngle, "high-angle", "High Angle", "Góc cao", "high angle shot", "góc máy cao", nil),
		option(models.CategoryCameraAngle, "side-profile", "Side Profile", "Góc nghiêng", "side profile composition", "góc nghiêng", nil),

		// Hairstyles
		option(models.CategoryHairstyle, "same", "Keep Same", "Giữ nguyên", "", "", nil),
		option(models.CategoryHairstyle, "sleek-ponytail", "Sleek Ponytail", "Tóc đuôi ngựa", "sleek pulled-back ponytail", "tóc đuôi ngựa gọn gàng", nil),
		option(models.CategoryHairstyle, "loose-waves", "Loose Waves", "Tóc xoăn nhẹ", "loose natural waves", "tóc xoăn sóng nhẹ tự nhiên", nil),
		option(models.CategoryHairstyle, "classic-bun", "Classic Bun", "Tóc búi", "classic low bun", "tóc búi thấp cổ điển", nil),

		// Makeup
		option(models.CategoryMakeup, "natural", "Natural", "Tự nhiên", "natural everyday makeup", "trang điểm tự nhiên", nil),
		option(models.CategoryMakeup, "glam", "Glam", "Quyến rũ", "polished glam makeup", "trang điểm quyến rũ", nil),
		option(models.CategoryMakeup, "soft-matte", "Soft Matte", "Matte nhẹ", "soft matte finish makeup", "trang điểm matte nhẹ", nil),
	}
	return opts
}
