package model

import "strconv"

// カートのキー。商品IDの文字列か、カスタムビルドの予約キー。
type CartKey string

// カスタムビルド行の予約キー。
const CustomBuildKey CartKey = "custom_build"

// 商品IDからキーを作る
func ProductKey(productID int64) CartKey {
	return CartKey(strconv.FormatInt(productID, 10))
}

func (k CartKey) IsCustomBuild() bool {
	return k == CustomBuildKey
}

// キーを商品IDとして解釈する。カスタムビルドや不正な文字列はfalse。
func (k CartKey) ProductID() (int64, bool) {
	if k.IsCustomBuild() {
		return 0, false
	}
	id, err := strconv.ParseInt(string(k), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// セッションに持つカート。数量は常に1以上で、0になるキーは持たない。
type Cart map[CartKey]int64
