/*
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package config

// evalConfiguration configures the external evaluator adapter. Unlike the
// teacher, which hand-tunes dozens of positional terms, evaluation itself
// is an opaque external function here, so there is little left to tune
// beyond where its weights live and how its mate/draw-adjacent scores get
// blended with search-side knowledge.
type evalConfiguration struct {
	WeightsFile string
	Tempo       int16

	UseEvalCache  bool
	EvalCacheSize int
}

func init() {
	Settings.Eval.WeightsFile = "./weights.bin"
	Settings.Eval.Tempo = 10
	Settings.Eval.UseEvalCache = true
	Settings.Eval.EvalCacheSize = 16
}

func setupEval() {}
