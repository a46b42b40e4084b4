package usecase

// BuilderUsecase はコンフィギュレータの選択肢をそのまま返す。
// 永続化もストアへの依存もない。
type BuilderUsecase struct{}

func NewBuilderUsecase() *BuilderUsecase {
	return &BuilderUsecase{}
}

type BuildPreviewResponse struct {
	Switches string `json:"switches"`
	Layout   string `json:"layout"`
	Case     string `json:"case"`
}

// Preview は選んだ3つの文字列を表示用に返す。空文字も許す。
func (u *BuilderUsecase) Preview(switches string, layout string, caseColor string) BuildPreviewResponse {
	return BuildPreviewResponse{
		Switches: switches,
		Layout:   layout,
		Case:     caseColor,
	}
}
