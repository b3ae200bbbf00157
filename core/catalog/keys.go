package catalog

import "fmt"

func symbol(kind Kind, ordinal int, typeName string) string {
	if name := Name(kind, ordinal); name != "" {
		return name
	}
	return fmt.Sprintf("%s(%d)", typeName, ordinal)
}

// Kind, Ordinal, String and MarshalText make TextModel a Key.
func (t TextModel) Kind() Kind                   { return KindText }
func (t TextModel) Ordinal() int                 { return int(t) }
func (t TextModel) String() string               { return symbol(KindText, int(t), "TextModel") }
func (t TextModel) MarshalText() ([]byte, error) { return marshalKey(t) }

// UnmarshalText accepts a wire string or a symbolic name.
func (t *TextModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindText, text)
	if err != nil {
		return err
	}
	*t = TextModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make ChatModel a Key.
func (c ChatModel) Kind() Kind                   { return KindChat }
func (c ChatModel) Ordinal() int                 { return int(c) }
func (c ChatModel) String() string               { return symbol(KindChat, int(c), "ChatModel") }
func (c ChatModel) MarshalText() ([]byte, error) { return marshalKey(c) }

// UnmarshalText accepts a wire string or a symbolic name.
func (c *ChatModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindChat, text)
	if err != nil {
		return err
	}
	*c = ChatModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make TextEditModel a Key.
func (t TextEditModel) Kind() Kind                   { return KindTextEdit }
func (t TextEditModel) Ordinal() int                 { return int(t) }
func (t TextEditModel) String() string               { return symbol(KindTextEdit, int(t), "TextEditModel") }
func (t TextEditModel) MarshalText() ([]byte, error) { return marshalKey(t) }

// UnmarshalText accepts a wire string or a symbolic name.
func (t *TextEditModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindTextEdit, text)
	if err != nil {
		return err
	}
	*t = TextEditModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make AudioModel a Key.
func (a AudioModel) Kind() Kind                   { return KindAudio }
func (a AudioModel) Ordinal() int                 { return int(a) }
func (a AudioModel) String() string               { return symbol(KindAudio, int(a), "AudioModel") }
func (a AudioModel) MarshalText() ([]byte, error) { return marshalKey(a) }

// UnmarshalText accepts a wire string or a symbolic name.
func (a *AudioModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindAudio, text)
	if err != nil {
		return err
	}
	*a = AudioModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make ImageModel a Key.
func (i ImageModel) Kind() Kind                   { return KindImage }
func (i ImageModel) Ordinal() int                 { return int(i) }
func (i ImageModel) String() string               { return symbol(KindImage, int(i), "ImageModel") }
func (i ImageModel) MarshalText() ([]byte, error) { return marshalKey(i) }

// UnmarshalText accepts a wire string or a symbolic name.
func (i *ImageModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindImage, text)
	if err != nil {
		return err
	}
	*i = ImageModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make ImageEditModel a Key.
func (i ImageEditModel) Kind() Kind                   { return KindImageEdit }
func (i ImageEditModel) Ordinal() int                 { return int(i) }
func (i ImageEditModel) String() string               { return symbol(KindImageEdit, int(i), "ImageEditModel") }
func (i ImageEditModel) MarshalText() ([]byte, error) { return marshalKey(i) }

// UnmarshalText accepts a wire string or a symbolic name.
func (i *ImageEditModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindImageEdit, text)
	if err != nil {
		return err
	}
	*i = ImageEditModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make ImageVariationModel a Key.
func (i ImageVariationModel) Kind() Kind                   { return KindImageVariation }
func (i ImageVariationModel) Ordinal() int                 { return int(i) }
func (i ImageVariationModel) String() string               { return symbol(KindImageVariation, int(i), "ImageVariationModel") }
func (i ImageVariationModel) MarshalText() ([]byte, error) { return marshalKey(i) }

// UnmarshalText accepts a wire string or a symbolic name.
func (i *ImageVariationModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindImageVariation, text)
	if err != nil {
		return err
	}
	*i = ImageVariationModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make OtherModel a Key.
func (o OtherModel) Kind() Kind                   { return KindOther }
func (o OtherModel) Ordinal() int                 { return int(o) }
func (o OtherModel) String() string               { return symbol(KindOther, int(o), "OtherModel") }
func (o OtherModel) MarshalText() ([]byte, error) { return marshalKey(o) }

// UnmarshalText accepts a wire string or a symbolic name.
func (o *OtherModel) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindOther, text)
	if err != nil {
		return err
	}
	*o = OtherModel(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make ImageSize a Key.
func (i ImageSize) Kind() Kind                   { return KindImageSize }
func (i ImageSize) Ordinal() int                 { return int(i) }
func (i ImageSize) String() string               { return symbol(KindImageSize, int(i), "ImageSize") }
func (i ImageSize) MarshalText() ([]byte, error) { return marshalKey(i) }

// UnmarshalText accepts a wire string or a symbolic name.
func (i *ImageSize) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindImageSize, text)
	if err != nil {
		return err
	}
	*i = ImageSize(ordinal)
	return nil
}

// Kind, Ordinal, String and MarshalText make Role a Key.
func (r Role) Kind() Kind                   { return KindRole }
func (r Role) Ordinal() int                 { return int(r) }
func (r Role) String() string               { return symbol(KindRole, int(r), "Role") }
func (r Role) MarshalText() ([]byte, error) { return marshalKey(r) }

// UnmarshalText accepts a wire string or a symbolic name.
func (r *Role) UnmarshalText(text []byte) error {
	ordinal, err := parseText(KindRole, text)
	if err != nil {
		return err
	}
	*r = Role(ordinal)
	return nil
}
